package component

import (
	"github.com/google/uuid"
)

type ClickAction string

const (
	OpenURL         ClickAction = "open_url"
	OpenFile        ClickAction = "open_file"
	RunCommand      ClickAction = "run_command"
	SuggestCommand  ClickAction = "suggest_command"
	ChangePage      ClickAction = "change_page"
	CopyToClipboard ClickAction = "copy_to_clipboard"
)

func (a ClickAction) valid() bool {
	switch a {
	case OpenURL, OpenFile, RunCommand, SuggestCommand, ChangePage, CopyToClipboard:
		return true
	}
	return false
}

// ClickEvent is the data of a click action. For ChangePage the value holds the
// page number in decimal.
type ClickEvent struct {
	Action ClickAction
	Value  string
}

func NewClickEvent(action ClickAction, value string) *ClickEvent {
	return &ClickEvent{Action: action, Value: value}
}

type HoverAction string

const (
	ShowText   HoverAction = "show_text"
	ShowItem   HoverAction = "show_item"
	ShowEntity HoverAction = "show_entity"
)

type HoverItem struct {
	ID string
	// Count is omitted from the wire form when zero.
	Count int
	Tag   string
}

type HoverEntity struct {
	Type string
	ID   uuid.UUID
	Name Component
}

// HoverEvent carries exactly one payload matching Action: Text for ShowText,
// Item for ShowItem, Entity for ShowEntity. Legacy holds the verbatim
// stringified value of pre-1.16 item and entity tooltips and is only used
// when the structured payload is nil.
type HoverEvent struct {
	Action HoverAction
	Text   Component
	Item   *HoverItem
	Entity *HoverEntity
	Legacy string
}

func ShowTextEvent(c Component) *HoverEvent {
	return &HoverEvent{Action: ShowText, Text: c}
}

func ShowItemEvent(item HoverItem) *HoverEvent {
	return &HoverEvent{Action: ShowItem, Item: &item}
}

func ShowEntityEvent(entity HoverEntity) *HoverEvent {
	return &HoverEvent{Action: ShowEntity, Entity: &entity}
}

func (h *HoverEvent) equal(o *HoverEvent) bool {
	if h == nil || o == nil {
		return h == o
	}
	if h.Action != o.Action || h.Legacy != o.Legacy || !Equal(h.Text, o.Text) {
		return false
	}
	if (h.Item == nil) != (o.Item == nil) || h.Item != nil && *h.Item != *o.Item {
		return false
	}
	if (h.Entity == nil) != (o.Entity == nil) {
		return false
	}
	if h.Entity != nil {
		a, b := h.Entity, o.Entity
		return a.Type == b.Type && a.ID == b.ID && Equal(a.Name, b.Name)
	}
	return true
}

func (h *HoverEvent) clone() *HoverEvent {
	if h == nil {
		return nil
	}
	out := &HoverEvent{Action: h.Action, Text: Clone(h.Text), Legacy: h.Legacy}
	if h.Item != nil {
		item := *h.Item
		out.Item = &item
	}
	if h.Entity != nil {
		out.Entity = &HoverEntity{Type: h.Entity.Type, ID: h.Entity.ID, Name: Clone(h.Entity.Name)}
	}
	return out
}
