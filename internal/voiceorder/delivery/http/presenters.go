package http

import (
	"strings"

	"voice-ordering/internal/voiceorder"
)

// --- Request DTOs ---

type startReq struct {
	CustomerName string `json:"customer_name" binding:"max=100"`
}

func (r startReq) validate() error { return nil }

func (r startReq) toInput() voiceorder.StartInput {
	return voiceorder.StartInput{CustomerName: r.CustomerName}
}

// chatReq leaves session and message checks to the use case, so an unknown
// or missing session id is recovered before an empty message is rejected.
type chatReq struct {
	SessionID    string `json:"session_id"`
	UserMessage  string `json:"user_message"  binding:"max=4000"`
	CustomerName string `json:"customer_name" binding:"max=100"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() voiceorder.TurnInput {
	return voiceorder.TurnInput{
		SessionID:    strings.TrimSpace(r.SessionID),
		UserText:     r.UserMessage,
		CustomerName: r.CustomerName,
	}
}

// --- Response DTOs ---

type startResp struct {
	SessionID        string `json:"session_id"`
	AssistantMessage string `json:"assistant_message"`
}

func (h *handler) newStartResp(out voiceorder.StartOutput) startResp {
	return startResp{
		SessionID:        out.SessionID,
		AssistantMessage: out.AssistantText,
	}
}

type orderResp struct {
	DinnerID        string         `json:"dinner_id"`
	DinnerName      string         `json:"dinner_name"`
	StyleID         string         `json:"style_id"`
	StyleName       string         `json:"style_name"`
	DeliveryDate    string         `json:"delivery_date"`
	DeliveryAddress string         `json:"delivery_address"`
	CardNumber      string         `json:"card_number"`
	CardExpiry      string         `json:"card_expiry"`
	CardCvc         string         `json:"card_cvc"`
	Customizations  map[string]int `json:"customizations"`
}

func newOrderResp(d voiceorder.OrderDraft) orderResp {
	custom := d.Customizations
	if custom == nil {
		custom = map[string]int{}
	}
	return orderResp{
		DinnerID:        d.DinnerID,
		DinnerName:      d.DinnerName,
		StyleID:         d.StyleID,
		StyleName:       d.StyleName,
		DeliveryDate:    d.DeliveryDate,
		DeliveryAddress: d.DeliveryAddress,
		CardNumber:      d.Payment.CardNumber,
		CardExpiry:      d.Payment.CardExpiry,
		CardCvc:         d.Payment.CardCvc,
		Customizations:  custom,
	}
}

type chatResp struct {
	SessionID        string     `json:"session_id"`
	AssistantMessage string     `json:"assistant_message"`
	DisplayMessage   string     `json:"display_message"`
	IsOrderComplete  bool       `json:"is_order_complete"`
	OrderData        *orderResp `json:"order_data,omitempty"`
}

func (h *handler) newChatResp(out voiceorder.TurnOutput) chatResp {
	resp := chatResp{
		SessionID:        out.SessionID,
		AssistantMessage: out.AssistantText,
		DisplayMessage:   out.DisplayText,
		IsOrderComplete:  out.IsOrderComplete,
	}
	if out.Draft != nil {
		order := newOrderResp(*out.Draft)
		resp.OrderData = &order
	}
	return resp
}
