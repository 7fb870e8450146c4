package chart

// Category10 is the ten-colour categorical palette bars cycle through.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

func colorAt(palette []string, i int) string {
	if len(palette) == 0 {
		return Category10[i%len(Category10)]
	}
	return palette[i%len(palette)]
}
