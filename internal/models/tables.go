package models

import "time"

// RelationshipMetric is one contact's row in the relationship table.
// Pointer fields are nil when the contact did not meet the minimum sample size
// for that specific metric ("no data", never zero).
type RelationshipMetric struct {
	ContactKey  string `json:"contact_key"`
	DisplayName string `json:"display_name,omitempty"`

	Sent     int `json:"sent"`
	Received int `json:"received"`
	Total    int `json:"total"`

	YearsActive  int       `json:"years_active"`
	FirstMessage time.Time `json:"first_message"`
	LastMessage  time.Time `json:"last_message"`

	BalanceRatio *float64 `json:"balance_ratio,omitempty"`

	Conversations   int      `json:"conversations"`
	OwnerInitiated  int      `json:"owner_initiated"`
	InitiationShare *float64 `json:"initiation_share,omitempty"`

	OwnerReplyMedianSec   *float64 `json:"owner_reply_median_sec,omitempty"`
	ContactReplyMedianSec *float64 `json:"contact_reply_median_sec,omitempty"`
}

// YearlyRanking is one (year, contact) cell of the ranking table.
// Rank uses standard competition ranking: ties share the minimum rank and the
// next rank skips accordingly.
type YearlyRanking struct {
	Year       int    `json:"year"`
	ContactKey string `json:"contact_key"`
	Messages   int    `json:"messages"`
	Sent       int    `json:"sent"`
	Received   int    `json:"received"`
	Rank       int    `json:"rank"`
}

// RankMove is one contact crossing a rank threshold between two years.
// A nil rank means the contact was absent from that year's ranking.
type RankMove struct {
	ContactKey string `json:"contact_key"`
	FromRank   *int   `json:"from_rank,omitempty"`
	ToRank     *int   `json:"to_rank,omitempty"`
}

// RankShift is the rising/faded classification for one year pair.
type RankShift struct {
	FromYear int        `json:"from_year"`
	ToYear   int        `json:"to_year"`
	Rising   []RankMove `json:"rising"`
	Faded    []RankMove `json:"faded"`
}

// TrajectoryPoint is one (year, rank) sample for a contact's bump-chart line.
// Years where the contact was absent have no point.
type TrajectoryPoint struct {
	Year int `json:"year"`
	Rank int `json:"rank"`
}

type Trajectory struct {
	ContactKey string            `json:"contact_key"`
	Points     []TrajectoryPoint `json:"points"`
}

// Streak is a contact's longest run of consecutive calendar days with at
// least one owner-sent message. Dates are YYYY-MM-DD.
type Streak struct {
	ContactKey string `json:"contact_key"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Length     int    `json:"length"`
}

// YearlyVolume is the total/sent/received message count for one year.
// ActiveDays counts distinct calendar days with at least one owner-sent
// message.
type YearlyVolume struct {
	Year       int `json:"year"`
	Total      int `json:"total"`
	Sent       int `json:"sent"`
	Received   int `json:"received"`
	ActiveDays int `json:"active_days"`
}

// HeatmapCell is one (weekday, hour) bucket of the activity heatmap. Cells
// cover the full 7x24 grid; quiet buckets carry a zero count.
type HeatmapCell struct {
	Day   string `json:"day"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

// PeakHour is the busiest hour of day for one year. Ties resolve to the
// earliest hour.
type PeakHour struct {
	Year     int `json:"year"`
	Hour     int `json:"hour"`
	Messages int `json:"messages"`
}

// YearQuestionRatio is the share of owner-sent messages containing a question
// mark, per year.
type YearQuestionRatio struct {
	Year      int     `json:"year"`
	Total     int     `json:"total"`
	Questions int     `json:"questions"`
	Pct       float64 `json:"pct"`
}

// ContactQuestionRatio is the question share of owner-sent messages to one
// contact. Contacts under the minimum sample size have no row.
type ContactQuestionRatio struct {
	ContactKey string  `json:"contact_key"`
	Total      int     `json:"total"`
	Questions  int     `json:"questions"`
	Pct        float64 `json:"pct"`
}

// PhraseCount is one mined phrase for one year.
type PhraseCount struct {
	Year     int    `json:"year"`
	Phrase   string `json:"phrase"`
	Count    int    `json:"count"`
	Messages int    `json:"messages"`
}

// TermScore is one year-distinctive term with its tf-idf weight.
type TermScore struct {
	Year  int     `json:"year"`
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Topic is one extracted topic component for one year.
type Topic struct {
	Year    int      `json:"year"`
	TopicID int      `json:"topic_id"`
	Terms   []string `json:"terms"`
}

// ContactSentiment is the mean VADER score over all messages with a contact.
type ContactSentiment struct {
	ContactKey   string  `json:"contact_key"`
	Messages     int     `json:"messages"`
	MeanCompound float64 `json:"mean_compound"`
	MeanPositive float64 `json:"mean_positive"`
	MeanNegative float64 `json:"mean_negative"`
}

// PartitionFailure records one isolated sub-analysis failure. The run carries
// on; the partition is simply absent from its output table.
type PartitionFailure struct {
	Component string `json:"component"`
	Partition string `json:"partition"`
	Reason    string `json:"reason"`
}

// Results is the full set of derived tables for one analysis run.
// It is a pure function of the collection plus configuration; every run
// produces a fresh instance.
type Results struct {
	GeneratedAt        time.Time              `json:"generated_at"`
	Messages           int                    `json:"messages"`
	Contacts           int                    `json:"contacts"`
	Relationships      []RelationshipMetric   `json:"relationships"`
	Rankings           []YearlyRanking        `json:"rankings"`
	RankShifts         []RankShift            `json:"rank_shifts"`
	Trajectories       []Trajectory           `json:"trajectories"`
	Streaks            []Streak               `json:"streaks"`
	Volume             []YearlyVolume         `json:"volume"`
	Heatmap            []HeatmapCell          `json:"heatmap"`
	PeakHours          []PeakHour             `json:"peak_hours"`
	QuestionsByYear    []YearQuestionRatio    `json:"questions_by_year"`
	QuestionsByContact []ContactQuestionRatio `json:"questions_by_contact"`
	Phrases            []PhraseCount          `json:"phrases"`
	Terms              []TermScore            `json:"terms"`
	Topics             []Topic                `json:"topics"`
	Sentiment          []ContactSentiment     `json:"sentiment"`
	Failures           []PartitionFailure     `json:"failures,omitempty"`
}

// Storage is the persistence envelope for a results snapshot.
type Storage struct {
	Version int      `json:"version"`
	Results *Results `json:"results"`
}

const StorageVersion = 1
