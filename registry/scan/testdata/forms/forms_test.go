package forms

type IgnoredProps struct {
	X int `selector:"div"`
}
