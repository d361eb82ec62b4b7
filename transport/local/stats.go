package local

import (
	"slices"
	"strings"
)

// InstanceStats is a snapshot of one topic instance.
type InstanceStats struct {
	Generation uint64 // samples published so far
	Timestamp  uint64 // latest sample, microseconds
	Priority   int32
	QueueSize  uint32
	Index      int
	Advertised bool
}

// TopicStats is a snapshot of one topic.
type TopicStats struct {
	Name          string
	Fields        string
	Instances     []InstanceStats // instances that ever carried data or are advertised
	Subscriptions int
	Size          uint16
}

// Stats returns a snapshot of every known topic, ordered by name.
func (b *Bus) Stats() []TopicStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := make(map[*topic]int)
	b.subs.each(func(_ handle, s *subscription) bool {
		subs[s.topic]++
		return true
	})

	out := make([]TopicStats, 0, len(b.topics))
	for _, t := range b.topics {
		ts := TopicStats{
			Name:          t.name,
			Fields:        t.fields,
			Size:          t.size,
			Subscriptions: subs[t],
		}
		for i, inst := range t.instances {
			if !inst.advertised && inst.generation == 0 {
				continue
			}
			ts.Instances = append(ts.Instances, InstanceStats{
				Index:      i,
				Advertised: inst.advertised,
				Priority:   inst.priority,
				QueueSize:  inst.queueSize,
				Generation: inst.generation,
				Timestamp:  inst.timestamp,
			})
		}
		out = append(out, ts)
	}

	slices.SortFunc(out, func(x, y TopicStats) int {
		return strings.Compare(x.Name, y.Name)
	})
	return out
}
