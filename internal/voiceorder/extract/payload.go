package extract

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"voice-ordering/internal/voiceorder"
)

// Payload is the decoded completion block. Every field is optional; an empty
// Text means the model did not provide it.
type Payload struct {
	DinnerName      Text           `json:"dinnerName"`
	StyleName       Text           `json:"styleName"`
	DeliveryDate    Text           `json:"deliveryDate"`
	DeliveryAddress Text           `json:"deliveryAddress"`
	PaymentInfo     PaymentInfo    `json:"paymentInfo"`
	Customizations  Customizations `json:"customizations"`
}

type PaymentInfo struct {
	CardNumber Text `json:"cardNumber"`
	CardExpiry Text `json:"cardExpiry"`
	CardCvc    Text `json:"cardCvc"`
}

// Address returns the delivery address or the on-file placeholder.
func (p Payload) Address() string {
	return p.DeliveryAddress.Or(voiceorder.PlaceholderOnFile)
}

// Payment returns card details with the on-file placeholder for missing fields.
func (p Payload) Payment() voiceorder.Payment {
	return voiceorder.Payment{
		CardNumber: p.PaymentInfo.CardNumber.Or(voiceorder.PlaceholderOnFile),
		CardExpiry: p.PaymentInfo.CardExpiry.Or(voiceorder.PlaceholderOnFile),
		CardCvc:    p.PaymentInfo.CardCvc.Or(voiceorder.PlaceholderOnFile),
	}
}

// Text is a trimmed scalar. Numbers and booleans are kept as their literal
// text; objects, arrays and null decode as empty.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
	case '{', '[', 'n':
		*t = ""
	default:
		*t = Text(string(b))
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Or returns t, or fallback when t is empty.
func (t Text) Or(fallback string) string {
	if t == "" {
		return fallback
	}
	return string(t)
}

// PaymentInfo tolerates a non-object value by ignoring it.
func (p *PaymentInfo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*p = PaymentInfo{}
		return nil
	}
	type plain PaymentInfo
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = PaymentInfo(v)
	return nil
}

// Customizations maps menu item names to the quantities the model asked for.
// A non-object value decodes as empty.
type Customizations map[string]Quantity

func (c *Customizations) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*c = nil
		return nil
	}
	m := map[string]Quantity{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*c = m
	return nil
}

// Quantity is a customization count. Valid is false for negative,
// non-integral or non-numeric input; Raw keeps the literal for diagnostics.
type Quantity struct {
	Value int
	Valid bool
	Raw   string
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*q = Quantity{Raw: string(b)}
	if len(b) == 0 {
		return nil
	}

	text := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(text); err == nil {
		q.Value, q.Valid = n, n >= 0
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	if f >= 0 && f == math.Trunc(f) && f <= math.MaxInt32 {
		q.Value, q.Valid = int(f), true
	}
	return nil
}
