package coerce

import "bytes"

// FlexFloat decodes a JSON number or numeric string. Invalid input decodes to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = FlexFloat(parseFloat(string(unquote(b))))
	return nil
}

// FlexInt decodes a JSON number or numeric string. Invalid input decodes to 0.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	*i = FlexInt(parseInt(string(unquote(b))))
	return nil
}

// FlexString decodes a JSON string or number as text. null decodes to "".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	*s = FlexString(bytes.TrimSpace(unquote(b)))
	return nil
}

func unquote(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		return b[1 : len(b)-1]
	}
	return b
}
