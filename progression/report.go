package progression

import "fmt"

// IssueKind names a load-time degradation. None of them abort a load.
type IssueKind int

const (
	IssueMalformedDoor IssueKind = iota
	IssueSpawnTagNotFound
	IssueNoDefaultSpawn
	IssueNoCollectibleFound
)

func (k IssueKind) String() string {
	switch k {
	case IssueMalformedDoor:
		return "MalformedDoorDefinition"
	case IssueSpawnTagNotFound:
		return "SpawnTagNotFound"
	case IssueNoDefaultSpawn:
		return "NoDefaultSpawn"
	case IssueNoCollectibleFound:
		return "NoCollectibleFound"
	}
	return fmt.Sprintf("IssueKind(%d)", int(k))
}

type LoadIssue struct {
	Kind   IssueKind
	Detail string
}

func (i LoadIssue) String() string {
	return i.Kind.String() + ": " + i.Detail
}

// LevelLoadReport collects what a load had to work around.
type LevelLoadReport struct {
	Level  LevelID
	Issues []LoadIssue
}

func (r *LevelLoadReport) add(kind IssueKind, format string, args ...any) {
	r.Issues = append(r.Issues, LoadIssue{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// Has reports whether at least one issue of kind was recorded.
func (r LevelLoadReport) Has(kind IssueKind) bool {
	return r.Count(kind) > 0
}

// Count returns how many issues of kind were recorded.
func (r LevelLoadReport) Count(kind IssueKind) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}

// Empty reports whether the level loaded without any degradation.
func (r LevelLoadReport) Empty() bool {
	return len(r.Issues) == 0
}
