package model

// ActivityType is the closed set of journal entry categories.
type ActivityType string

const (
	ActivityNote             ActivityType = "note"
	ActivityEmotionalTrigger ActivityType = "emotional_trigger"
	ActivityGroupInsight     ActivityType = "group_insight"
	ActivityReflection       ActivityType = "reflection"
	ActivityMilestone        ActivityType = "milestone"

	// DefaultActivityType is what unknown categories resolve to.
	DefaultActivityType = ActivityNote
)

// ActivityTypes returns the categories in declaration order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityNote,
		ActivityEmotionalTrigger,
		ActivityGroupInsight,
		ActivityReflection,
		ActivityMilestone,
	}
}
