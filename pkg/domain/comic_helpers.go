package domain

// Captions はパネル順を保ったままキャプションだけを取り出します。
func (ps Panels) Captions() []string {
	captions := make([]string, len(ps))
	for i, p := range ps {
		captions[i] = p.Caption
	}
	return captions
}

// Descriptions はパネル順を保ったまま描写指示だけを取り出します。
func (ps Panels) Descriptions() []string {
	descriptions := make([]string, len(ps))
	for i, p := range ps {
		descriptions[i] = p.Description
	}
	return descriptions
}

// Sources は台本のパネルから PanelSource だけを取り出します。
func (s Script) Sources() Panels {
	sources := make(Panels, len(s.Panels))
	for i, p := range s.Panels {
		sources[i] = p.PanelSource
	}
	return sources
}

// ImagePaths は台本のパネルに指定された画像パスを返します。
// 1つでも未指定のパネルがあれば ok は false になります。
func (s Script) ImagePaths() (paths []string, ok bool) {
	paths = make([]string, len(s.Panels))
	ok = len(s.Panels) > 0
	for i, p := range s.Panels {
		if p.Image == "" {
			ok = false
		}
		paths[i] = p.Image
	}
	return paths, ok
}
