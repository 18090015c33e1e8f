package corpus

// posLabels 把 jieba 使用的词性代码映射为中文名称，
// 同时覆盖 ICTCLAS 词性集和 LAC 的专名标签。
var posLabels = map[string]string{
	"a":    "形容词",
	"ad":   "副形词",
	"ag":   "形容词性语素",
	"an":   "名形词",
	"b":    "区别词",
	"c":    "连词",
	"d":    "副词",
	"df":   "副词",
	"dg":   "副语素",
	"e":    "叹词",
	"eng":  "英文",
	"f":    "方位词",
	"g":    "语素",
	"h":    "前接成分",
	"i":    "成语",
	"j":    "简称略语",
	"k":    "后接成分",
	"l":    "习用语",
	"m":    "数量词",
	"mg":   "数语素",
	"mq":   "数量词",
	"n":    "名词",
	"ng":   "名语素",
	"nr":   "人名",
	"nrfg": "人名",
	"nrt":  "人名",
	"ns":   "地名",
	"nt":   "机构名",
	"nw":   "作品名",
	"nz":   "其他专名",
	"o":    "拟声词",
	"p":    "介词",
	"q":    "量词",
	"r":    "代词",
	"rg":   "代词性语素",
	"rr":   "人称代词",
	"rz":   "指示代词",
	"s":    "处所词",
	"t":    "时间词",
	"tg":   "时语素",
	"u":    "助词",
	"ud":   "结构助词",
	"ug":   "时态助词",
	"uj":   "结构助词",
	"ul":   "时态助词",
	"uv":   "结构助词",
	"uz":   "时态助词",
	"v":    "动词",
	"vd":   "副动词",
	"vg":   "动语素",
	"vi":   "不及物动词",
	"vn":   "名动词",
	"vq":   "动词",
	"w":    "标点符号",
	"x":    "非语素字",
	"xc":   "其他虚词",
	"y":    "语气词",
	"yg":   "语气语素",
	"z":    "状态词",
	"zg":   "状态词",
	"PER":  "人名",
	"LOC":  "地名",
	"ORG":  "机构名",
	"TIME": "时间",
}

// PosLabel 返回词性代码对应的中文名称，未知代码返回 false。
func PosLabel(tag string) (string, bool) {
	l, ok := posLabels[tag]
	return l, ok
}
