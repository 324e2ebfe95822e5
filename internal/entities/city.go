package entities

// City is reference data: seeded once, read afterwards.
type City struct {
	ID   int
	Name string
}
