package timetable

import (
	"encoding/json"
	"fmt"
	"strings"

	"schedulebot/pkg/utils"
)

// Response is the body returned by the timetableByGroup endpoint.
type Response struct {
	TimetableEvents List[Event] `json:"timetableEvents"`
}

// Event is a single lesson of the group timetable.
// Every field is optional, a missing or malformed one renders as a dash.
type Event struct {
	Date          Text          `json:"date"`
	TimeStart     Text          `json:"timeStart"`
	TimeEnd       Text          `json:"timeEnd"`
	NameEt        Text          `json:"nameEt"`
	NameEn        Text          `json:"nameEn"`
	Teachers      List[Teacher] `json:"teachers"`
	Rooms         List[Room]    `json:"rooms"`
	StudentGroups List[Group]   `json:"studentGroups"`
}

type Teacher struct {
	Firstname Text `json:"firstname"`
	Lastname  Text `json:"lastname"`
}

type Room struct {
	RoomCode     Text `json:"roomCode"`
	BuildingCode Text `json:"buildingCode"`
}

type Group struct {
	Code Text `json:"code"`
}

// Day returns the calendar part of the event date, e.g. 2024-09-11 for 2024-09-11T00:00:00Z.
func (e Event) Day() string {
	if len(e.Date) > len(isoDate) {
		return string(e.Date[:len(isoDate)])
	}
	return string(e.Date)
}

// Subject prefers the Estonian name and falls back to the English one.
func (e Event) Subject() string {
	switch {
	case e.NameEt != "":
		return string(e.NameEt)
	case e.NameEn != "":
		return string(e.NameEn)
	default:
		return placeholder
	}
}

func (e Event) Start() string { return orPlaceholder(e.TimeStart) }
func (e Event) End() string   { return orPlaceholder(e.TimeEnd) }

func (e Event) Teacher() string { return joinOrPlaceholder(e.Teachers) }
func (e Event) Room() string    { return joinOrPlaceholder(e.Rooms) }
func (e Event) Groups() string  { return joinOrPlaceholder(e.StudentGroups) }

func (t Teacher) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", t.Firstname, t.Lastname))
}

func (r Room) String() string {
	switch {
	case r.RoomCode == "" && r.BuildingCode == "":
		return ""
	case r.BuildingCode == "":
		return string(r.RoomCode)
	default:
		return fmt.Sprintf("%s (%s)", orPlaceholder(r.RoomCode), r.BuildingCode)
	}
}

func (g Group) String() string { return string(g.Code) }

func orPlaceholder(t Text) string {
	if t == "" {
		return placeholder
	}
	return string(t)
}

func joinOrPlaceholder[S ~[]E, E fmt.Stringer](s S) string {
	joined := utils.JoinFunc(s, func(e E) string { return e.String() }, ", ")
	if joined == "" {
		return placeholder
	}
	return joined
}

// Text is a string read leniently: null and values of any other JSON type
// decode as the empty string instead of failing the whole response.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// List is a JSON array read leniently. A value that is not an array decodes
// as an empty list and elements that do not fit T are skipped.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	items := make(List[T], 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	*l = items
	return nil
}
