package models

// Record represents a task entry shown in the sorted list
type Record struct {
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	DueAt     int64  `json:"due_at"`     // Unix timestamp
	CreatedAt int64  `json:"created_at"` // Unix timestamp
}

// SampleRecords returns the embedded sample list. Each call returns a fresh
// slice, so callers may keep or reorder it without affecting later calls.
func SampleRecords() []Record {
	return []Record{
		{
			Title:     "牛乳買う",
			Detail:    "いつもの牛乳",
			DueAt:     1731304648,
			CreatedAt: 1730818648,
		},
		{
			Title:     "娘の迎え",
			Detail:    "なんば保育園",
			DueAt:     1731303048,
			CreatedAt: 1730718555,
		},
		{
			Title:     "掃除する",
			Detail:    "トイレ, 風呂",
			DueAt:     1731400000,
			CreatedAt: 1730800000,
		},
	}
}
