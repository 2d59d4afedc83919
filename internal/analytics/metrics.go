package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"jobtrack-backend/internal/jobs"
)

// Summary is the derived analytics for one owner's snapshot of records.
// Everything here is a pure function of the input slice: same snapshot,
// same output, regardless of input order.
type Summary struct {
	Total         int             `json:"total"`
	Offers        int             `json:"offers"`
	ResponseRate  int             `json:"responseRate"`
	InterviewRate int             `json:"interviewRate"`
	Funnel        []FunnelStage   `json:"funnel"`
	Flow          FlowGraph       `json:"flow"`
	Timeline      []TimelinePoint `json:"timeline"`
}

// FunnelStage is the record count for one status, in canonical status order.
type FunnelStage struct {
	Status jobs.Status `json:"status"`
	Label  string      `json:"label"`
	Count  int         `json:"count"`
}

// FlowGraph is a single-source weighted graph: all applications fanning out
// to the statuses they currently sit in. Statuses with zero records get no node.
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
}

type FlowNode struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type FlowLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Value  int `json:"value"`
}

// TimelinePoint is the number of applications added on one calendar day.
type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Compute derives the full summary from a snapshot of records.
func Compute(snapshot []jobs.Job) Summary {
	counts := statusCounts(snapshot)
	return Summary{
		Total:         len(snapshot),
		Offers:        counts[jobs.StatusOffered],
		ResponseRate:  ResponseRate(snapshot),
		InterviewRate: InterviewRate(snapshot),
		Funnel:        Funnel(snapshot),
		Flow:          Flow(snapshot),
		Timeline:      Timeline(snapshot),
	}
}

// Funnel counts records per status in the fixed display order, including
// statuses with zero records.
func Funnel(snapshot []jobs.Job) []FunnelStage {
	counts := statusCounts(snapshot)
	out := make([]FunnelStage, 0, len(jobs.StatusOrder))
	for _, status := range jobs.StatusOrder {
		out = append(out, FunnelStage{
			Status: status,
			Label:  statusLabel(status),
			Count:  counts[status],
		})
	}
	return out
}

// Flow builds the single-source flow graph. An empty snapshot produces an
// empty graph rather than a lone source node.
func Flow(snapshot []jobs.Job) FlowGraph {
	graph := FlowGraph{Nodes: []FlowNode{}, Links: []FlowLink{}}
	if len(snapshot) == 0 {
		return graph
	}

	graph.Nodes = append(graph.Nodes, FlowNode{Name: "All Applications", Count: len(snapshot)})

	counts := statusCounts(snapshot)
	for _, status := range jobs.StatusOrder {
		count := counts[status]
		if count == 0 {
			continue
		}
		target := len(graph.Nodes)
		graph.Nodes = append(graph.Nodes, FlowNode{Name: statusLabel(status), Count: count})
		graph.Links = append(graph.Links, FlowLink{Source: 0, Target: target, Value: count})
	}
	return graph
}

// ResponseRate is the share of records that moved past APPLIED, as a rounded
// percentage. Zero when the snapshot is empty.
func ResponseRate(snapshot []jobs.Job) int {
	if len(snapshot) == 0 {
		return 0
	}
	responded := 0
	for _, job := range snapshot {
		if job.Status != jobs.StatusSaved && job.Status != jobs.StatusApplied {
			responded++
		}
	}
	return roundRate(responded, len(snapshot))
}

// InterviewRate is the share of submitted applications (anything past SAVED)
// that reached INTERVIEWING or OFFERED. Zero when nothing was submitted.
func InterviewRate(snapshot []jobs.Job) int {
	submitted := 0
	interviews := 0
	for _, job := range snapshot {
		if job.Status != jobs.StatusSaved {
			submitted++
		}
		if job.Status == jobs.StatusInterviewing || job.Status == jobs.StatusOffered {
			interviews++
		}
	}
	if submitted == 0 {
		return 0
	}
	return roundRate(interviews, submitted)
}

// Timeline groups records by the calendar day they were added, sorted
// chronologically ascending. Records sharing a day collapse into one point.
func Timeline(snapshot []jobs.Job) []TimelinePoint {
	type bucket struct {
		day   time.Time
		count int
	}
	grouped := make(map[string]*bucket)
	for _, job := range snapshot {
		day := job.AppliedDate.UTC().Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if b, ok := grouped[key]; ok {
			b.count++
		} else {
			grouped[key] = &bucket{day: day, count: 1}
		}
	}

	buckets := make([]*bucket, 0, len(grouped))
	for _, b := range grouped {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].day.Before(buckets[j].day)
	})

	out := make([]TimelinePoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, TimelinePoint{Date: b.day.Format("Jan 2"), Count: b.count})
	}
	return out
}

func statusCounts(snapshot []jobs.Job) map[jobs.Status]int {
	counts := make(map[jobs.Status]int, len(jobs.StatusOrder))
	for _, job := range snapshot {
		counts[job.Status]++
	}
	return counts
}

func statusLabel(status jobs.Status) string {
	s := string(status)
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

func roundRate(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
