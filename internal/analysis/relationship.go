package analysis

import (
	"sort"

	"mwa/internal/models"
	"mwa/internal/structures"
)

// RelationshipFor computes one contact's relationship metrics row from its
// annotated message stream. Metrics below their configured sample floor are
// left nil rather than reported as zero.
func RelationshipFor(key, displayName string, annotated []Annotated, conf *structures.AnalysisConfig) models.RelationshipMetric {
	m := models.RelationshipMetric{
		ContactKey:  key,
		DisplayName: displayName,
	}

	years := make(map[int]struct{})
	var ownerLatencies, contactLatencies []float64

	for i, a := range annotated {
		msg := a.Msg
		if msg.FromOwner() {
			m.Sent++
		} else {
			m.Received++
		}
		years[msg.Year()] = struct{}{}
		if i == 0 {
			m.FirstMessage = msg.Timestamp
		}
		m.LastMessage = msg.Timestamp

		// A reply is a direction flip relative to the immediately preceding
		// message. Gaps >= the cutoff or <= 0 are not in-conversation replies.
		if !a.HasElapsed || i == 0 {
			continue
		}
		if annotated[i-1].Msg.Direction == msg.Direction {
			continue
		}
		if a.Elapsed <= 0 || a.Elapsed >= conf.ReplyCutoff {
			continue
		}
		sec := a.Elapsed.Seconds()
		if msg.FromOwner() {
			ownerLatencies = append(ownerLatencies, sec)
		} else {
			contactLatencies = append(contactLatencies, sec)
		}
	}

	m.Total = m.Sent + m.Received
	m.YearsActive = len(years)

	cs := ConversationsFor(annotated)
	m.Conversations = cs.Conversations
	m.OwnerInitiated = cs.OwnerInitiated

	if m.Total >= conf.MinMessagesForBalance {
		ratio := float64(m.Sent) / (float64(m.Received) + conf.Epsilon)
		m.BalanceRatio = &ratio
	}

	if m.Conversations >= conf.MinConversationsForInitiation {
		share := float64(m.OwnerInitiated) / float64(m.Conversations)
		m.InitiationShare = &share
	}

	// Median, not mean: occasional multi-day silences misread as replies
	// would dominate a mean.
	m.OwnerReplyMedianSec = median(ownerLatencies)
	m.ContactReplyMedianSec = median(contactLatencies)

	return m
}

// median returns nil for an empty sample ("no data" semantics).
func median(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sort.Float64s(vals)
	var med float64
	n := len(vals)
	if n%2 == 1 {
		med = vals[n/2]
	} else {
		med = (vals[n/2-1] + vals[n/2]) / 2
	}
	return &med
}

// Relationships computes the full relationship table, one row per contact,
// ordered by total message count descending.
func Relationships(col *models.Collection, conf *structures.AnalysisConfig) []models.RelationshipMetric {
	gap := conf.Gap()
	out := make([]models.RelationshipMetric, 0, len(col.Contacts()))
	for _, key := range col.Contacts() {
		annotated := SegmentContact(col.ByContact(key), gap)
		out = append(out, RelationshipFor(key, col.DisplayName(key), annotated, conf))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}
