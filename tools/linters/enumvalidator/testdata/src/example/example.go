package example

type Category string

const (
	CategoryWentWell    Category = "What Went Well"
	CategorySuggestions Category = "Suggestions"
)

type EventType string

const (
	EventUpvoteToggled EventType = "upvote.toggled"
)

type Feedback struct {
	Category Category
	Message  string
}

type BoardEvent struct {
	Type EventType
}

func bad() {
	fb := &Feedback{}
	fb.Category = "Random" // want "enum field Category assigned string literal"

	ev := &BoardEvent{}
	ev.Type = "upvote.added" // want "enum field Type assigned string literal"

	_ = Feedback{Category: "Suggestions"} // want "enum field Category assigned string literal"
}

func good() {
	fb := &Feedback{}
	fb.Category = CategorySuggestions // OK: using constant
	fb.Message = "plain strings are fine"

	ev := BoardEvent{Type: EventUpvoteToggled}
	_ = ev
}

func alsoGood() {
	// OK: Variable, not literal
	category := CategoryWentWell
	fb := &Feedback{Category: category}
	_ = fb
}
