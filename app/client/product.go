package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a server-assigned product identifier. It is opaque to the client and
// round-trips in the JSON form the server used (number or string).
type ID struct {
	value  string
	quoted bool
}

// ParseID builds an ID from user input. Numeric input is sent as a JSON number.
func ParseID(s string) ID {
	_, err := strconv.ParseFloat(s, 64)
	return ID{value: s, quoted: err != nil}
}

func (id ID) String() string { return id.value }

// Equal reports whether both IDs name the same record, regardless of the JSON
// form either one arrived in.
func (id ID) Equal(other ID) bool { return id.value == other.value }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.quoted {
		return json.Marshal(id.value)
	}
	if id.value == "" {
		return []byte("null"), nil
	}
	return []byte(id.value), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ID{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID{value: s, quoted: true}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("product id: %w", err)
		}
		*id = ID{value: n.String()}
	}
	return nil
}

// Product is one record of the /products collection. Price is kept as text;
// the client never interprets it.
type Product struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

// UnmarshalJSON accepts the price as a JSON string or number.
func (p *Product) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID    ID              `json:"id"`
		Title string          `json:"title"`
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	price := ""
	if len(aux.Price) > 0 && string(aux.Price) != "null" {
		if aux.Price[0] == '"' {
			if err := json.Unmarshal(aux.Price, &price); err != nil {
				return err
			}
		} else {
			price = string(aux.Price)
		}
	}

	*p = Product{ID: aux.ID, Title: aux.Title, Price: price}
	return nil
}

// Draft is the body of a create request.
type Draft struct {
	Title string `json:"title"`
	Price string `json:"price"`
}
