package vocabulary

// actionVerbs are strong verbs that open effective resume bullets
var actionVerbs = []string{
	"achieved", "built", "created", "designed", "developed", "delivered", "drove",
	"engineered", "established", "implemented", "improved", "increased", "launched", "led",
	"managed", "optimized", "reduced", "spearheaded", "streamlined", "architected",
	"automated", "coordinated", "directed", "generated", "initiated", "mentored",
	"negotiated", "orchestrated", "pioneered", "resolved", "transformed", "accelerated",
	"analyzed", "collaborated", "deployed", "expanded", "migrated", "modernized", "produced",
	"scaled", "secured", "shipped",
}

// weakPhrases are passive openers that dilute accomplishments
var weakPhrases = []string{
	"responsible for", "helped", "assisted", "worked on", "participated in", "involved in",
	"duties included", "tasked with", "handled", "was part of",
}

// degreeLevels ranks degree keywords; higher is more advanced
var degreeLevels = map[string]int{
	"high school":       1,
	"diploma":           1,
	"ged":               1,
	"associate's":       2,
	"associate degree":  2,
	"associates degree": 2,
	"associate of":      2,
	"bachelor":          3,
	"bachelors":         3,
	"bachelor's":        3,
	"b.s.":              3,
	"b.a.":              3,
	"bs":                3,
	"ba":                3,
	"bsc":               3,
	"master":            4,
	"masters":           4,
	"master's":          4,
	"m.s.":              4,
	"ms":                4,
	"msc":               4,
	"mba":               4,
	"phd":               5,
	"ph.d":              5,
	"doctorate":         5,
	"doctoral":          5,
}

// problemFonts are fonts that ATS parsers and recruiters handle poorly
var problemFonts = []string{
	"comic sans", "papyrus", "brush script", "wingdings", "webdings", "zapf dingbats",
	"curlz", "jokerman", "chiller",
}
