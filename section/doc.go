// Package section implements the fixed-position pieces of the container layout: the
// signature, the header, the screenshot snapshot block, the offsets table, and the
// change-form frame header. Each type exposes a symmetric Decode(*wire.Cursor)/Encode(*wire.Writer)
// pair, mirroring the teacher's hand-rolled Parse/Bytes struct codecs -- this format has no
// serialization library in its dependency set to reach for, so every fixed-layout struct
// here is encoded field-by-field against an EndianEngine, same as the teacher does.
package section
