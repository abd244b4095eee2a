package forms

type LoginFormProps struct {
	Disabled bool      `selector:"form > input; form > MyButton" props:"optional"`
	OnSubmit func(int) `selector:"form > MyButton:last" inject_as:"onclick"`
	Title    string
	hidden   bool `selector:"form"`
}

type SearchBarProps struct {
	Placeholder string `selector:"div > input:nth-of-type(1)" inject_as:"placeholder"`
}

type notAComponent struct {
	Value int `selector:"div"`
}
