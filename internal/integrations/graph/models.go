package graph

// DateTimeZone время события в формате Graph
type DateTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// Event событие календаря
type Event struct {
	ID         string       `json:"id,omitempty"`
	Subject    string       `json:"subject"`
	Start      DateTimeZone `json:"start"`
	End        DateTimeZone `json:"end"`
	ShowAs     string       `json:"showAs"`
	Categories []string     `json:"categories,omitempty"`
}

// IsBusy returns true for events that occupy the calendar
func (e Event) IsBusy() bool {
	return e.ShowAs == "busy" || e.ShowAs == "oof"
}

// StartClock returns the HH:MM part of the start time, or "" if it is too short
func (e Event) StartClock() string {
	if len(e.Start.DateTime) < 16 {
		return ""
	}
	return e.Start.DateTime[11:16]
}

// NewEvent тело создания события
type NewEvent struct {
	Subject  string       `json:"subject"`
	ShowAs   string       `json:"showAs"`
	IsAllDay bool         `json:"isAllDay,omitempty"`
	Start    DateTimeZone `json:"start"`
	End      DateTimeZone `json:"end"`
	Body     ItemBody     `json:"body"`
}

type calendarViewResponse struct {
	Value []Event `json:"value"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

// ItemBody тело письма или события
type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type message struct {
	Subject      string      `json:"subject"`
	Body         ItemBody    `json:"body"`
	ToRecipients []recipient `json:"toRecipients"`
	CcRecipients []recipient `json:"ccRecipients,omitempty"`
}

type sendMailRequest struct {
	Message         message `json:"message"`
	SaveToSentItems bool    `json:"saveToSentItems"`
}

func toRecipients(addrs []string) []recipient {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]recipient, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, recipient{EmailAddress: emailAddress{Address: a}})
	}
	return out
}
