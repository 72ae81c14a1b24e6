package api

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// The upstream serializes most numeric fields as strings ("12000", "13.5")
// and uses the empty string for absent values, switching to real JSON
// numbers on a handful of GIS layers. The Flex types accept either form so
// record structs can declare one stable Go type per field.

// FlexInt handles JSON numbers that may come as strings or integers.
// An empty string decodes to zero.
type FlexInt int

func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// Try as int first
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*fi = FlexInt(i)
		return nil
	}
	// Try as string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*fi = 0
			return nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*fi = FlexInt(i)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexInt", data)
}

// Int returns the plain int value.
func (fi FlexInt) Int() int {
	return int(fi)
}

// FlexFloat handles JSON numbers that may come as strings or numbers.
// An empty string decodes to zero.
type FlexFloat float64

func (ff *FlexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// Try as float first
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*ff = FlexFloat(f)
		return nil
	}
	// Try as string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*ff = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*ff = FlexFloat(f)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexFloat", data)
}

// Float returns the plain float64 value.
func (ff FlexFloat) Float() float64 {
	return float64(ff)
}

// FlexString handles JSON values that may come as strings or numbers
// and stores them as strings
type FlexString string

func (fs *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// Try as string first
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*fs = FlexString(s)
		return nil
	}
	// Try as float64 (JSON numbers are float64)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		// Format as integer if it's a whole number
		if f == float64(int64(f)) {
			*fs = FlexString(strconv.FormatInt(int64(f), 10))
		} else {
			*fs = FlexString(strconv.FormatFloat(f, 'f', -1, 64))
		}
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into FlexString", data)
}

// String returns the string value
func (fs FlexString) String() string {
	return string(fs)
}
