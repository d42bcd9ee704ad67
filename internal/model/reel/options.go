package reel

// 选项目录：风格、题材、语言、音乐情绪、时长、演员库
// 这些是 GenerationConfig 校验的依据，也通过 /options 接口暴露给 UI

// SubtitleNone 字幕语言哨兵值，表示不加字幕
const SubtitleNone = "None"

// Genres 支持的题材
var Genres = []string{
	"Romance", "Action", "Horror", "Comedy", "Thriller",
	"Fantasy", "Manga", "Drama", "Sci-Fi",
}

// Styles 支持的影视风格
var Styles = []string{
	"K-Drama", "Bollywood", "Hollywood", "Anime",
	"Manga", "Realistic", "Vintage", "Cinematic",
}

// Durations 支持的 Reel 时长
var Durations = []string{"15s", "30s", "45s", "60s"}

// LanguageOption 语言选项
type LanguageOption struct {
	Code string `json:"code"` // 语言代码
	Name string `json:"name"` // 语言名称（配置中使用名称）
}

// Languages 支持的配音/字幕语言
var Languages = []LanguageOption{
	{Code: "en", Name: "English"},
	{Code: "ko", Name: "Korean"},
	{Code: "hi", Name: "Hindi"},
	{Code: "ja", Name: "Japanese"},
	{Code: "es", Name: "Spanish"},
	{Code: "zh", Name: "Chinese"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "th", Name: "Thai"},
}

// MusicMoodOption 音乐情绪选项
type MusicMoodOption struct {
	ID   string   `json:"id"`   // 情绪 ID（配置中使用 ID）
	Name string   `json:"name"` // 展示名称
	Tags []string `json:"tags"` // 风格标签
}

// MusicMoods 支持的音乐情绪
var MusicMoods = []MusicMoodOption{
	{ID: "auto", Name: "Auto-match to scene", Tags: []string{}},
	{ID: "romantic_soft", Name: "Romantic / Soft", Tags: []string{"piano", "strings"}},
	{ID: "dramatic_intense", Name: "Dramatic / Intense", Tags: []string{"orchestral", "epic"}},
	{ID: "action_epic", Name: "Action / Epic", Tags: []string{"fast", "drums"}},
	{ID: "sad_emotional", Name: "Sad / Emotional", Tags: []string{"slow", "minor key"}},
	{ID: "happy_upbeat", Name: "Happy / Upbeat", Tags: []string{"pop", "bright"}},
	{ID: "mysterious_suspense", Name: "Mysterious / Suspense", Tags: []string{"ambient", "dark"}},
	{ID: "horror_dark", Name: "Horror / Dark", Tags: []string{"dissonant", "scary"}},
	{ID: "comedy_playful", Name: "Comedy / Playful", Tags: []string{"quirky"}},
	{ID: "none", Name: "No Music", Tags: []string{}},
}

// Actor 演员条目
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActorCategory 按性别分组的演员
type ActorCategory struct {
	Male   []Actor `json:"male"`
	Female []Actor `json:"female"`
}

// ActorDB 风格/题材 → 演员库
var ActorDB = map[string]ActorCategory{
	"K-Drama": {
		Male:   []Actor{{ID: "psj", Name: "Park Seo Joon"}, {ID: "ksh", Name: "Kim Soo Hyun"}, {ID: "v", Name: "V (BTS)"}, {ID: "cew", Name: "Cha Eunwoo"}},
		Female: []Actor{{ID: "pby", Name: "Park Bo Young"}, {ID: "iu", Name: "IU"}, {ID: "shk", Name: "Song Hye Kyo"}, {ID: "jen", Name: "Jennie"}},
	},
	"Bollywood": {
		Male:   []Actor{{ID: "srk", Name: "Shah Rukh Khan"}, {ID: "rk", Name: "Ranbir Kapoor"}, {ID: "rs", Name: "Ranveer Singh"}},
		Female: []Actor{{ID: "dp", Name: "Deepika Padukone"}, {ID: "ab", Name: "Alia Bhatt"}, {ID: "pc", Name: "Priyanka Chopra"}},
	},
	"Hollywood": {
		Male:   []Actor{{ID: "tc", Name: "Timothée Chalamet"}, {ID: "th", Name: "Tom Holland"}, {ID: "rg", Name: "Ryan Gosling"}},
		Female: []Actor{{ID: "zen", Name: "Zendaya"}, {ID: "fp", Name: "Florence Pugh"}, {ID: "atj", Name: "Anya Taylor-Joy"}},
	},
	"Anime": {
		Male:   []Actor{{ID: "am1", Name: "Shonen Protagonist"}, {ID: "am2", Name: "Mysterious Rival"}},
		Female: []Actor{{ID: "af1", Name: "Magical Girl"}, {ID: "af2", Name: "Tsundere Lead"}},
	},
	"Action": {
		Male:   []Actor{{ID: "actm1", Name: "Jason Statham Type"}, {ID: "actm2", Name: "John Wick Type"}},
		Female: []Actor{{ID: "actf1", Name: "Action Heroine"}, {ID: "actf2", Name: "Spy"}},
	},
	"Horror": {
		Male:   []Actor{{ID: "h1", Name: "Scared Victim"}},
		Female: []Actor{{ID: "h2", Name: "Final Girl"}},
	},
}

// ActorsFor 按风格/题材取演员库，未显式映射的题材回退到相近风格
func ActorsFor(key string) ActorCategory {
	if cat, ok := ActorDB[key]; ok {
		return cat
	}
	switch key {
	case "Manga":
		return ActorDB["Anime"]
	case "Romance", "Drama":
		return ActorDB["K-Drama"]
	}
	return ActorDB["Hollywood"]
}

// ValidStyle 判断风格是否受支持
func ValidStyle(style string) bool {
	for _, s := range Styles {
		if s == style {
			return true
		}
	}
	return false
}

// ValidLanguage 判断语言名称是否受支持
func ValidLanguage(name string) bool {
	for _, l := range Languages {
		if l.Name == name {
			return true
		}
	}
	return false
}

// ValidDuration 判断时长标签是否受支持
func ValidDuration(d string) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

// ValidMusicMood 判断音乐情绪 ID 是否受支持
func ValidMusicMood(mood string) bool {
	for _, m := range MusicMoods {
		if m.ID == mood {
			return true
		}
	}
	return false
}
