package domain

// StripPanelCount は1本のコミックストリップを構成するパネルの数です。
const StripPanelCount = 6

// PanelSource はコンテンツ提供元から渡される1パネル分の描写指示とキャプションです。
// コアに渡された後は変更されません。
type PanelSource struct {
	Description string `json:"description"`
	Caption     string `json:"caption"`
}

// ScriptPanel は台本ファイル上の1パネルです。
// Image が指定されている場合、そのパスの画像をパネル画像として使用します。
type ScriptPanel struct {
	PanelSource
	Image string `json:"image,omitempty"`
}

// Script はコミックストリップ1本分の台本全体の構造です。
type Script struct {
	Title  string        `json:"title"`
	Style  Style         `json:"style,omitempty"`
	Panels []ScriptPanel `json:"panels"`
}

// Panels は PanelSource のスライスに補助メソッドを持たせるための型です。
type Panels []PanelSource
