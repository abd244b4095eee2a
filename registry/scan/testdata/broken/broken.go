package broken

type BadListProps struct {
	Items []string `selector:"ul > li:[5..2]"`
}
