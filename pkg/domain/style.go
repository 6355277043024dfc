package domain

import (
	"fmt"
	"strings"
)

// Style は画像生成側が解釈する画風の識別子です。
type Style string

const (
	StyleManga    Style = "Manga"
	StyleAnime    Style = "Anime"
	StyleAmerican Style = "American"
	StyleBelgian  Style = "Belgian"
)

// styleProfile は画風ごとに画像生成へ渡す指示と、利用者向けの説明を保持します。
type styleProfile struct {
	prompt      string
	description string
}

var styleProfiles = map[Style]styleProfile{
	StyleManga: {
		prompt:      "Black and white, sharp lines, exaggerated expressions, dramatic shading, No bright colors",
		description: "High-contrast black and white sketch with sharp, clean lines, exaggerated facial expressions, and dramatic shading. No bright colors, only grayscale tones",
	},
	StyleAnime: {
		prompt:      "Vivid colors, cel shading, expressive eyes, dynamic action poses.",
		description: "Vibrant colors with smooth cel shading, large expressive eyes, and detailed hair. Dynamic action poses with fluid motion lines",
	},
	StyleAmerican: {
		prompt:      "Bold outlines, vibrant colors, comic book ink style, exaggerated features.",
		description: "Bold outlines with heavy inking, bright and saturated colors, and exaggerated muscular features. Classic comic book style",
	},
	StyleBelgian: {
		prompt:      "Clear lines, soft shading, rich backgrounds, Tintin comic style.",
		description: "Clean, clear lines with soft, flat shading. Rich and detailed backgrounds in a semi-realistic style, inspired by Tintin comics",
	},
}

// Styles は定義済みの画風を表示順に返します。
func Styles() []Style {
	return []Style{StyleManga, StyleAnime, StyleAmerican, StyleBelgian}
}

// ParseStyle は大文字小文字を区別せずに画風名を解釈します。
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	names := make([]string, 0, len(styleProfiles))
	for _, s := range Styles() {
		names = append(names, string(s))
	}
	return "", fmt.Errorf("無効な画風です: %q (選択肢: %s)", name, strings.Join(names, ", "))
}

// Prompt は画像生成に渡す画風の指示文を返します。未定義の画風では空文字です。
func (s Style) Prompt() string {
	return styleProfiles[s].prompt
}

// Description は利用者向けの画風の説明を返します。
func (s Style) Description() string {
	return styleProfiles[s].description
}

// Valid は定義済みの画風かどうかを返します。
func (s Style) Valid() bool {
	_, ok := styleProfiles[s]
	return ok
}
