package savefile

import "github.com/creationengine/cegse/wire"

func decodeChangeForm(c *wire.Cursor) (ChangeForm, error) {
	var cf ChangeForm

	if err := cf.Header.Decode(c); err != nil {
		return cf, err
	}

	data, err := c.CopyBytes(int(cf.Header.Length1))
	if err != nil {
		return cf, err
	}

	cf.Data = data

	return cf, nil
}

func encodeChangeForm(w *wire.Writer, cf ChangeForm) error {
	if err := cf.Header.Encode(w); err != nil {
		return err
	}

	w.Bytes(cf.Data)

	return nil
}
