package component

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	"github.com/google/uuid"
)

// discriminants in the order they are checked. The first key present decides
// the variant.
var discriminants = [...]string{"text", "translate", "score", "selector", "keybind", "nbt"}

// Unmarshal decodes a bare string, an array or an object into a component.
//
// An array decodes to an empty Text whose extra holds the elements, except
// that a single element array decodes to that element. Unknown object keys
// are ignored.
func (c *Codec) Unmarshal(data []byte) (Component, error) {
	if !json.Valid(data) {
		return nil, decodeErr("", ReasonInvalidJSON, json.Unmarshal(data, new(any)))
	}
	return decoder{}.value(data, "")
}

// decoder is version independent: every codec accepts both the legacy and
// the modern forms.
type decoder struct{}

type fields map[string]json.RawMessage

func (f fields) has(key string) bool {
	_, ok := f[key]
	return ok
}

func firstByte(raw json.RawMessage) byte {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func (d decoder) value(raw json.RawMessage, path string) (Component, error) {
	switch firstByte(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, decodeErr(path, ReasonInvalidJSON, err)
		}
		return NewText(s), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, decodeErr(path, ReasonInvalidJSON, err)
		}
		list, err := d.list(items, path)
		if err != nil {
			return nil, err
		}
		if len(list) == 1 {
			return list[0], nil
		}
		root := NewText("")
		root.Extra = list
		return root, nil
	case '{':
		var obj fields
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, decodeErr(path, ReasonInvalidJSON, err)
		}
		return d.object(obj, path)
	}
	return nil, decodeErr(path, ReasonInvalidType, nil)
}

func (d decoder) list(items []json.RawMessage, path string) ([]Component, error) {
	if len(items) == 0 {
		return nil, nil
	}
	list := make([]Component, 0, len(items))
	for i, item := range items {
		c, err := d.value(item, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (d decoder) object(obj fields, path string) (Component, error) {
	var (
		comp Component
		err  error
	)

	kind := ""
	for _, key := range discriminants {
		if obj.has(key) {
			kind = key
			break
		}
	}

	switch kind {
	case "text":
		comp, err = d.text(obj, path)
	case "translate":
		comp, err = d.translatable(obj, path)
	case "score":
		comp, err = d.score(obj, path)
	case "selector":
		comp, err = d.selector(obj, path)
	case "keybind":
		comp, err = d.keybind(obj, path)
	case "nbt":
		comp, err = d.nbt(obj, path)
	default:
		return nil, decodeErr(path, ReasonMissingDiscriminant, nil)
	}
	if err != nil {
		return nil, err
	}

	if err := d.style(obj, path, comp.Base()); err != nil {
		return nil, err
	}
	return comp, nil
}

func (d decoder) text(obj fields, path string) (Component, error) {
	content, err := str(obj["text"], fieldPath(path, "text"))
	if err != nil {
		return nil, err
	}
	return NewText(content), nil
}

func (d decoder) translatable(obj fields, path string) (Component, error) {
	key, err := str(obj["translate"], fieldPath(path, "translate"))
	if err != nil {
		return nil, err
	}
	t := NewTranslatable(key)

	if raw, ok := obj["fallback"]; ok {
		fallback, err := str(raw, fieldPath(path, "fallback"))
		if err != nil {
			return nil, err
		}
		t.SetFallback(fallback)
	}

	if raw, ok := obj["with"]; ok {
		withPath := fieldPath(path, "with")
		items, err := array(raw, withPath)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			arg, err := d.argument(item, indexPath(withPath, i))
			if err != nil {
				return nil, err
			}
			t.With = append(t.With, arg)
		}
	}
	return t, nil
}

// argument decodes a translation argument. Besides components, servers send
// bare numbers and booleans, which become text holding their literal.
func (d decoder) argument(raw json.RawMessage, path string) (Component, error) {
	switch b := firstByte(raw); {
	case b == '-' || b >= '0' && b <= '9', b == 't', b == 'f':
		return NewText(string(bytes.TrimSpace(raw))), nil
	}
	return d.value(raw, path)
}

func (d decoder) score(obj fields, path string) (Component, error) {
	scorePath := fieldPath(path, "score")
	raw := obj["score"]
	if firstByte(raw) != '{' {
		return nil, decodeErr(scorePath, ReasonInvalidType, nil)
	}
	var score fields
	if err := json.Unmarshal(raw, &score); err != nil {
		return nil, decodeErr(scorePath, ReasonInvalidJSON, err)
	}

	if !score.has("name") || !score.has("objective") {
		return nil, decodeErr(scorePath, ReasonMalformed, nil)
	}
	name, err := str(score["name"], fieldPath(scorePath, "name"))
	if err != nil {
		return nil, err
	}
	objective, err := str(score["objective"], fieldPath(scorePath, "objective"))
	if err != nil {
		return nil, err
	}

	s := NewScore(name, objective)
	if raw, ok := score["value"]; ok {
		if s.Value, err = str(raw, fieldPath(scorePath, "value")); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (d decoder) selector(obj fields, path string) (Component, error) {
	pattern, err := str(obj["selector"], fieldPath(path, "selector"))
	if err != nil {
		return nil, err
	}
	s := NewSelector(pattern)
	if s.Separator, err = d.separator(obj, path); err != nil {
		return nil, err
	}
	return s, nil
}

func (d decoder) separator(obj fields, path string) (Component, error) {
	raw, ok := obj["separator"]
	if !ok {
		return nil, nil
	}
	return d.value(raw, fieldPath(path, "separator"))
}

func (d decoder) keybind(obj fields, path string) (Component, error) {
	id, err := str(obj["keybind"], fieldPath(path, "keybind"))
	if err != nil {
		return nil, err
	}
	return NewKeybind(id), nil
}

var nbtSources = [...]NBTSourceKind{BlockSource, EntitySource, StorageSource}

func (d decoder) nbt(obj fields, path string) (Component, error) {
	nbtPath, err := str(obj["nbt"], fieldPath(path, "nbt"))
	if err != nil {
		return nil, err
	}

	n := &NBT{Path: nbtPath}
	for _, kind := range nbtSources {
		raw, ok := obj[string(kind)]
		if !ok {
			continue
		}
		target, err := str(raw, fieldPath(path, string(kind)))
		if err != nil {
			return nil, err
		}
		n.Source = NBTSource{Kind: kind, Target: target}
		break
	}
	if n.Source.Kind == "" {
		return nil, decodeErr(path, ReasonMalformed, nil)
	}

	if n.Interpret, err = tristate(obj, "interpret", path); err != nil {
		return nil, err
	}
	if n.Separator, err = d.separator(obj, path); err != nil {
		return nil, err
	}
	return n, nil
}

func (d decoder) style(obj fields, path string, s *Style) error {
	var err error
	for _, flag := range [...]struct {
		key string
		dst *Tristate
	}{
		{"bold", &s.Bold},
		{"italic", &s.Italic},
		{"underlined", &s.Underlined},
		{"strikethrough", &s.Strikethrough},
		{"obfuscated", &s.Obfuscated},
	} {
		if *flag.dst, err = tristate(obj, flag.key, path); err != nil {
			return err
		}
	}

	if raw, ok := obj["color"]; ok {
		colorPath := fieldPath(path, "color")
		name, err := str(raw, colorPath)
		if err != nil {
			return err
		}
		if s.Color, err = ParseColor(name); err != nil {
			return decodeErr(colorPath, ReasonInvalidValue, err)
		}
	}

	if raw, ok := obj["font"]; ok {
		fontPath := fieldPath(path, "font")
		font, err := str(raw, fontPath)
		if err != nil {
			return err
		}
		id, err := ParseIdentifier(font)
		if err != nil {
			return decodeErr(fontPath, ReasonInvalidValue, err)
		}
		s.Font = &id
	}

	if raw, ok := obj["insertion"]; ok {
		insertion, err := str(raw, fieldPath(path, "insertion"))
		if err != nil {
			return err
		}
		s.Insertion = &insertion
	}

	if raw, ok := obj["clickEvent"]; ok {
		if s.ClickEvent, err = d.click(raw, fieldPath(path, "clickEvent")); err != nil {
			return err
		}
	}

	if raw, ok := obj["hoverEvent"]; ok {
		if s.HoverEvent, err = d.hover(raw, fieldPath(path, "hoverEvent")); err != nil {
			return err
		}
	}

	if raw, ok := obj["extra"]; ok {
		extraPath := fieldPath(path, "extra")
		items, err := array(raw, extraPath)
		if err != nil {
			return err
		}
		if s.Extra, err = d.list(items, extraPath); err != nil {
			return err
		}
	}
	return nil
}

func (d decoder) click(raw json.RawMessage, path string) (*ClickEvent, error) {
	event, err := objectFields(raw, path)
	if err != nil {
		return nil, err
	}
	if !event.has("action") {
		return nil, decodeErr(path, ReasonMalformed, nil)
	}
	action, err := str(event["action"], fieldPath(path, "action"))
	if err != nil {
		return nil, err
	}
	click := &ClickEvent{Action: ClickAction(action)}
	if !click.Action.valid() {
		return nil, decodeErr(fieldPath(path, "action"), ReasonUnknownAction, nil)
	}

	if raw, ok := event["value"]; ok {
		valuePath := fieldPath(path, "value")
		switch b := firstByte(raw); {
		case b == '-' || b >= '0' && b <= '9':
			var page json.Number
			if err := json.Unmarshal(raw, &page); err != nil {
				return nil, decodeErr(valuePath, ReasonInvalidJSON, err)
			}
			click.Value = page.String()
		default:
			if click.Value, err = str(raw, valuePath); err != nil {
				return nil, err
			}
		}
	}
	return click, nil
}

func (d decoder) hover(raw json.RawMessage, path string) (*HoverEvent, error) {
	event, err := objectFields(raw, path)
	if err != nil {
		return nil, err
	}
	if !event.has("action") {
		return nil, decodeErr(path, ReasonMalformed, nil)
	}
	action, err := str(event["action"], fieldPath(path, "action"))
	if err != nil {
		return nil, err
	}
	hover := &HoverEvent{Action: HoverAction(action)}

	contents, modern := event["contents"]
	value, legacy := event["value"]
	if !modern && !legacy {
		return nil, decodeErr(path, ReasonMalformed, nil)
	}
	contentsPath := fieldPath(path, "contents")
	valuePath := fieldPath(path, "value")

	switch hover.Action {
	case ShowText:
		if modern {
			hover.Text, err = d.value(contents, contentsPath)
		} else {
			hover.Text, err = d.value(value, valuePath)
		}
	case ShowItem:
		if modern {
			hover.Item, err = d.item(contents, contentsPath)
		} else {
			hover.Legacy, err = d.legacyValue(value, valuePath)
		}
	case ShowEntity:
		if modern {
			hover.Entity, err = d.entity(contents, contentsPath)
		} else {
			hover.Legacy, err = d.legacyValue(value, valuePath)
		}
	default:
		return nil, decodeErr(fieldPath(path, "action"), ReasonUnknownAction, nil)
	}
	if err != nil {
		return nil, err
	}
	return hover, nil
}

// legacyValue returns the stringified NBT of a pre-1.16 tooltip. Old servers
// wrap it in a text component. An empty value describes nothing and is
// rejected.
func (d decoder) legacyValue(raw json.RawMessage, path string) (string, error) {
	var value string
	if firstByte(raw) == '"' {
		s, err := str(raw, path)
		if err != nil {
			return "", err
		}
		value = s
	} else {
		c, err := d.value(raw, path)
		if err != nil {
			return "", err
		}
		value = Plain(c)
	}
	if value == "" {
		return "", decodeErr(path, ReasonMalformed, nil)
	}
	return value, nil
}

func (d decoder) item(raw json.RawMessage, path string) (*HoverItem, error) {
	if firstByte(raw) == '"' {
		id, err := str(raw, path)
		if err != nil {
			return nil, err
		}
		return &HoverItem{ID: id}, nil
	}

	obj, err := objectFields(raw, path)
	if err != nil {
		return nil, err
	}
	if !obj.has("id") {
		return nil, decodeErr(path, ReasonMalformed, nil)
	}

	item := &HoverItem{}
	if item.ID, err = str(obj["id"], fieldPath(path, "id")); err != nil {
		return nil, err
	}
	if raw, ok := obj["count"]; ok {
		if err := json.Unmarshal(raw, &item.Count); err != nil {
			return nil, decodeErr(fieldPath(path, "count"), ReasonInvalidType, err)
		}
	}
	if raw, ok := obj["tag"]; ok {
		if item.Tag, err = str(raw, fieldPath(path, "tag")); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (d decoder) entity(raw json.RawMessage, path string) (*HoverEntity, error) {
	obj, err := objectFields(raw, path)
	if err != nil {
		return nil, err
	}
	if !obj.has("type") || !obj.has("id") {
		return nil, decodeErr(path, ReasonMalformed, nil)
	}

	entity := &HoverEntity{}
	if entity.Type, err = str(obj["type"], fieldPath(path, "type")); err != nil {
		return nil, err
	}
	if entity.ID, err = entityID(obj["id"], fieldPath(path, "id")); err != nil {
		return nil, err
	}
	if raw, ok := obj["name"]; ok {
		if entity.Name, err = d.value(raw, fieldPath(path, "name")); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

// entityID accepts the hyphenated string form and the four int array form
// used by newer versions.
func entityID(raw json.RawMessage, path string) (uuid.UUID, error) {
	switch firstByte(raw) {
	case '"':
		s, err := str(raw, path)
		if err != nil {
			return uuid.Nil, err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, decodeErr(path, ReasonInvalidValue, err)
		}
		return id, nil
	case '[':
		var ints []int32
		if err := json.Unmarshal(raw, &ints); err != nil || len(ints) != 4 {
			return uuid.Nil, decodeErr(path, ReasonMalformed, err)
		}
		var id uuid.UUID
		for i, v := range ints {
			binary.BigEndian.PutUint32(id[i*4:], uint32(v))
		}
		return id, nil
	}
	return uuid.Nil, decodeErr(path, ReasonInvalidType, nil)
}

func str(raw json.RawMessage, path string) (string, error) {
	if firstByte(raw) != '"' {
		return "", decodeErr(path, ReasonInvalidType, nil)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", decodeErr(path, ReasonInvalidJSON, err)
	}
	return s, nil
}

func array(raw json.RawMessage, path string) ([]json.RawMessage, error) {
	if firstByte(raw) != '[' {
		return nil, decodeErr(path, ReasonInvalidType, nil)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, decodeErr(path, ReasonInvalidJSON, err)
	}
	return items, nil
}

func objectFields(raw json.RawMessage, path string) (fields, error) {
	if firstByte(raw) != '{' {
		return nil, decodeErr(path, ReasonInvalidType, nil)
	}
	var obj fields
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, decodeErr(path, ReasonInvalidJSON, err)
	}
	return obj, nil
}

func tristate(obj fields, key, path string) (Tristate, error) {
	raw, ok := obj[key]
	if !ok {
		return Unset, nil
	}
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return True, nil
	case "false":
		return False, nil
	}
	return Unset, decodeErr(fieldPath(path, key), ReasonInvalidType, nil)
}
