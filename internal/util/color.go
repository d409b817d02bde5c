package util

import "hash/fnv"

var Palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#84CC16",
	"#F97316",
}

// MissedColor marks gantt entries whose deadline was missed.
const MissedColor = "#FFCCCC"

// ColorFor maps a process name to a palette color. The same name always gets
// the same color.
func ColorFor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return Palette[h.Sum32()%uint32(len(Palette))]
}
