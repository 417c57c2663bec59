package state

// QuestProgress tracks one quest the player has accepted. Stage is an
// index into the quest template's stage list; KillCounts tracks
// progress on kill-count stages keyed by enemy template id.
type QuestProgress struct {
	QuestID    string         `json:"quest_id"`
	Stage      int            `json:"stage"`
	Completed  bool           `json:"completed"`
	KillCounts map[string]int `json:"kill_counts,omitempty"`
}

// RecordKill bumps the kill counter for an enemy template.
func (q *QuestProgress) RecordKill(templateID string) {
	if q.KillCounts == nil {
		q.KillCounts = make(map[string]int)
	}
	q.KillCounts[templateID]++
}

// Kills returns the recorded kill count for an enemy template.
func (q *QuestProgress) Kills(templateID string) int {
	return q.KillCounts[templateID]
}
