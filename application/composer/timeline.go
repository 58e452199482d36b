package composer

import (
	"sort"

	"presidia-backend/domain/model"
)

// TimelineItem is one entry in the merged daily view: either a fixed
// lifestyle marker or a scheduled meeting, tagged by Kind.
type TimelineItem struct {
	Kind     string                 `json:"kind"`
	Hour     float64                `json:"hour"`
	Time     string                 `json:"time"`
	Emoji    string                 `json:"emoji,omitempty"`
	Label    string                 `json:"label,omitempty"`
	Sublabel string                 `json:"sublabel,omitempty"`
	Meeting  *model.BriefingMeeting `json:"meeting,omitempty"`
}

const (
	KindLifestyle = "lifestyle"
	KindMeeting   = "meeting"
)

// lifestyleMoments are the fixed daily markers injected into every briefing
// timeline for display pacing. Authored in ascending hour order.
var lifestyleMoments = []TimelineItem{
	{Kind: KindLifestyle, Hour: 7.0, Time: "7:00 AM", Emoji: "☀️", Label: "Rise & shine", Sublabel: "Morning routine"},
	{Kind: KindLifestyle, Hour: 7.5, Time: "7:30 AM", Emoji: "☕", Label: "Coffee", Sublabel: "Catch up on the news"},
	{Kind: KindLifestyle, Hour: 12.0, Time: "12:00 PM", Emoji: "🥗", Label: "Lunch break", Sublabel: "Step away from the screen"},
	{Kind: KindLifestyle, Hour: 17.0, Time: "5:00 PM", Emoji: "🌆", Label: "Wind down", Sublabel: "Review the day"},
	{Kind: KindLifestyle, Hour: 22.0, Time: "10:00 PM", Emoji: "🌙", Label: "Rest up", Sublabel: "Recharge for tomorrow"},
}

// BuildDailyTimeline merges the fixed lifestyle markers with one briefing's
// meetings into a single sequence ordered ascending by hour. The sort is
// stable and markers are concatenated first, so a meeting scheduled at
// exactly a marker's hour renders after the marker. Meetings arrive from the
// store already ordered by hour, but the full re-sort means the output is
// correct even when that ordering contract is not honored.
func BuildDailyTimeline(meetings []model.BriefingMeeting) []TimelineItem {
	items := make([]TimelineItem, 0, len(lifestyleMoments)+len(meetings))
	items = append(items, lifestyleMoments...)
	for i := range meetings {
		m := meetings[i]
		items = append(items, TimelineItem{
			Kind:    KindMeeting,
			Hour:    m.Hour,
			Time:    m.Time,
			Meeting: &m,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Hour < items[j].Hour
	})
	return items
}
