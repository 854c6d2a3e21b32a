package kb

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// radicalParents maps compatibility/presentation-form radicals to the
// canonical full character they are a compressed or positional form of.
// Covers the traditional side forms (訁 糹 釒 ...), the simplified side
// radicals (讠 钅 饣 ...) and the CJK Radicals Supplement forms that NFKD
// does not map to a named parent.
var radicalParents = map[string]string{
	"訁": "言", "糹": "糸", "釒": "金", "𥫗": "竹", "刂": "刀",
	"彳": "行", "𤣩": "玉", "𧾷": "足", "罒": "网", "乚": "乙",
	"飠": "食", "爫": "爪", "虍": "虎", "𧘇": "衣", "龶": "生",
	"𦍌": "羊", "亍": "行", "牜": "牛", "覀": "西", "丬": "爿",
	"䒑": "丷", "亻": "人", "氵": "水", "扌": "手", "忄": "心",
	"犭": "犬", "礻": "示", "衤": "衣", "灬": "火", "⺌": "小",
	"⺊": "卜", "讠": "言", "钅": "金", "饣": "食", "纟": "糸",
	"贝": "貝", "车": "車", "见": "見", "门": "門", "鱼": "魚",
	"马": "馬", "鸟": "鳥", "页": "頁", "风": "風", "⺝": "月",
	"⺼": "月", "⺶": "羊", "⺀": "八", "⺄": "乙", "⺆": "冂",
	"⺈": "刀", "韦": "韋", "长": "長", "齿": "齒", "龙": "龍",
	"龟": "龜", "⺗": "心",
}

// Radical codepoint blocks: CJK Radicals Supplement (2E80–2EFF) and Kangxi
// Radicals (2F00–2FDF).
const (
	radicalBlockLo = 0x2E80
	radicalBlockHi = 0x2FDF
)

// AddRadicalVariants extends the index with radical-variant entries. Two
// methods, matching how the mapping was originally assembled: the fixed
// manual table first (it carries corrections, e.g. ⺼ maps to 月 rather than
// its Unicode parent 肉), then the Unicode compatibility decomposition for
// the radical blocks. A variant is synthesized only when it is not already a
// named entry and its canonical parent is.
func (idx *Index) AddRadicalVariants() int {
	added := 0
	for variant, parent := range radicalParents {
		if idx.addVariant(variant, parent, KindRadicalVariant) {
			added++
		}
	}
	for cp := rune(radicalBlockLo); cp <= radicalBlockHi; cp++ {
		variant := string(cp)
		parent := norm.NFKD.String(variant)
		if parent == variant || len([]rune(parent)) != 1 {
			continue
		}
		if idx.addVariant(variant, parent, KindRadicalVariant) {
			added++
		}
	}
	return added
}

// AddScriptVariants extends the index from a traditional/simplified/kanji
// correspondence table. For each row, a traditional or kanji form that is
// unnamed inherits from the named simplified form. Must run after
// AddRadicalVariants; variant-of-a-variant chains are not followed.
func (idx *Index) AddScriptVariants(rows []VariantRow) int {
	added := 0
	for _, row := range rows {
		if row.Simplified == "" {
			continue
		}
		for _, char := range []string{row.Traditional, row.Kanji} {
			if char == "" || char == row.Simplified {
				continue
			}
			if idx.addVariant(char, row.Simplified, KindScriptVariant) {
				added++
			}
		}
	}
	return added
}

// addVariant synthesizes a variant entry inheriting the parent's keyword and
// aliases. Returns false when the variant is already named or the parent is
// not.
func (idx *Index) addVariant(variant, parent, kind string) bool {
	if _, exists := idx.ByChar[variant]; exists {
		return false
	}
	pe, ok := idx.ByChar[parent]
	if !ok {
		return false
	}
	idx.ByChar[variant] = &Entry{
		Character: variant,
		Keyword:   pe.Keyword,
		Kind:      kind,
		Aliases:   pe.Aliases,
		VariantOf: parent,
	}
	return true
}

// VariantRow is one logical concept across the three script conventions.
type VariantRow struct {
	Traditional string
	Simplified  string
	Kanji       string
}

// LoadVariantRows reads a tab-separated script-variant correspondence table:
// traditional, simplified, kanji per line. Missing forms are left empty;
// comment lines start with #.
func LoadVariantRows(path string) ([]VariantRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []VariantRow
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimPrefix(scanner.Text(), "\ufeff")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		row := VariantRow{}
		if len(parts) > 0 {
			row.Traditional = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			row.Simplified = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			row.Kanji = strings.TrimSpace(parts[2])
		}
		if row.Traditional == "" && row.Simplified == "" && row.Kanji == "" {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
