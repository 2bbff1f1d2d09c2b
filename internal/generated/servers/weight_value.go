package servers

import (
	"bytes"
	"encoding/json"
)

// WeightValue carries the submitted weight as raw text. JSON numbers and
// JSON strings are both accepted; anything else is kept verbatim so that
// shipment.ParseWeight reports it as invalid input.
type WeightValue string

func (w *WeightValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = WeightValue(s)
		return nil
	}
	*w = WeightValue(bytes.TrimSpace(data))
	return nil
}

func (w WeightValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(w))
}

// UnmarshalParam binds form and query values.
func (w *WeightValue) UnmarshalParam(param string) error {
	*w = WeightValue(param)
	return nil
}

func (w WeightValue) String() string {
	return string(w)
}
