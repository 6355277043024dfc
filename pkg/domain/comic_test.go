package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestScript_JSON(t *testing.T) {
	t.Run("台本ファイルの形式をパースできること", func(t *testing.T) {
		inputJSON := `{
			"title": "猫の大冒険",
			"style": "Manga",
			"panels": [
				{"description": "屋根の上の猫", "caption": "今日こそ飛ぶ！", "image": "PANEL_IMAGES/panel_1.png"},
				{"description": "落ちる猫", "caption": ""}
			]
		}`

		var script Script
		if err := json.Unmarshal([]byte(inputJSON), &script); err != nil {
			t.Fatalf("パース失敗: %v", err)
		}

		if script.Title != "猫の大冒険" {
			t.Errorf("タイトルが違います: %s", script.Title)
		}
		if script.Style != StyleManga {
			t.Errorf("画風が違います: %s", script.Style)
		}
		if len(script.Panels) != 2 || script.Panels[0].Caption != "今日こそ飛ぶ！" {
			t.Fatalf("パネル内容が正しくパースされていません: %+v", script.Panels)
		}
		if script.Panels[0].Image != "PANEL_IMAGES/panel_1.png" {
			t.Errorf("画像パスが違います: %s", script.Panels[0].Image)
		}
	})
}

func TestScript_Sources(t *testing.T) {
	script := Script{Panels: []ScriptPanel{
		{PanelSource: PanelSource{Description: "d1", Caption: "c1"}, Image: "a.png"},
		{PanelSource: PanelSource{Description: "d2", Caption: "c2"}},
	}}

	sources := script.Sources()
	if got, want := sources.Captions(), []string{"c1", "c2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Captions() = %v, want %v", got, want)
	}
	if got, want := sources.Descriptions(), []string{"d1", "d2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Descriptions() = %v, want %v", got, want)
	}

	t.Run("画像未指定のパネルがあれば ok は false", func(t *testing.T) {
		paths, ok := script.ImagePaths()
		if ok {
			t.Error("ok = true, want false")
		}
		if paths[0] != "a.png" || paths[1] != "" {
			t.Errorf("paths = %v", paths)
		}
	})

	t.Run("空の台本では ok は false", func(t *testing.T) {
		if _, ok := (Script{}).ImagePaths(); ok {
			t.Error("ok = true, want false")
		}
	})
}
