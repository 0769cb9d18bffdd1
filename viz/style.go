package viz

// Style carries the Graphviz attributes stamped into an exported tree:
// the graph caption and its font, node shape and palette, edge color.
// Zero-value fields are written as-is, so start from DefaultStyle and
// override selectively.
type Style struct {
	GraphLabel    string `mapstructure:"graph_label"`
	GraphFontSize int    `mapstructure:"graph_font_size"`
	NodeShape     string `mapstructure:"node_shape"`
	NodeStyle     string `mapstructure:"node_style"`
	NodeColor     string `mapstructure:"node_color"`
	NodeFontColor string `mapstructure:"node_font_color"`
	NodeFontSize  int    `mapstructure:"node_font_size"`
	EdgeColor     string `mapstructure:"edge_color"`
}

// DefaultStyle returns the stock look: filled light-blue circles with a
// title on top.
func DefaultStyle() Style {
	return Style{
		GraphLabel:    "Optimal Binary Search Tree",
		GraphFontSize: 20,
		NodeShape:     "circle",
		NodeStyle:     "filled",
		NodeColor:     "lightblue",
		NodeFontColor: "black",
		NodeFontSize:  14,
		EdgeColor:     "gray40",
	}
}
