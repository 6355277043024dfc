package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-utils/iohandler"
)

// StdinPath は台本を標準入力から読むことを示すパスです。
const StdinPath = "-"

// ScriptSource は JSON の台本ファイルを読み込む ContentSource です。
type ScriptSource struct {
	path string
}

// NewScriptSource は ScriptSource を生成します。
func NewScriptSource(path string) *ScriptSource {
	return &ScriptSource{path: path}
}

// LoadScript は台本ファイルを読み込みます。path が "-" の場合は標準入力から読み込みます。
func LoadScript(path string) (domain.Script, error) {
	name := path
	if name == StdinPath {
		name = ""
	}
	data, err := iohandler.ReadInput(name)
	if err != nil {
		return domain.Script{}, fmt.Errorf("台本ファイルの読み込みに失敗しました: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return script, fmt.Errorf("台本ファイルの解析に失敗しました (%s): %w", path, err)
	}
	return script, nil
}

// ParseScript は JSON の台本を解釈します。画風が空の場合は Manga として扱います。
func ParseScript(data []byte) (domain.Script, error) {
	var script domain.Script
	if err := json.Unmarshal(data, &script); err != nil {
		return script, err
	}
	if script.Style == "" {
		script.Style = domain.StyleManga
	}
	style, err := domain.ParseStyle(string(script.Style))
	if err != nil {
		return script, err
	}
	script.Style = style
	return script, nil
}

// Panels は台本のパネルを返します。prompt と style は台本側の内容が優先されるため使用しません。
func (s *ScriptSource) Panels(_ context.Context, _ string, _ domain.Style) ([]domain.PanelSource, error) {
	script, err := LoadScript(s.path)
	if err != nil {
		return nil, err
	}
	return script.Sources(), nil
}
