package generator

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/domain"
)

const (
	// PanelAspectRatio は単体パネルの推奨アスペクト比です。
	PanelAspectRatio = "2:3"
	// NoTextInstruction はパネル画像に文字を描かせないための指示です。キャプションは後段で描画します。
	NoTextInstruction = "Do not include any text, letters, speech bubbles or captions in the image."
	// NegativePanelPrompt は画像生成で避ける要素です。
	NegativePanelPrompt = "text, watermark, signature, speech bubble, logo"
)

// MangaPanelGenerator は gemini-image-kit の画像生成器が満たすインターフェースです。
type MangaPanelGenerator interface {
	GenerateMangaPanel(ctx context.Context, req imagedom.ImageGenerationRequest) (*imagedom.ImageResponse, error)
}

// GeminiImageSource は MangaPanelGenerator を ImageSource として使うためのアダプターです。
type GeminiImageSource struct {
	gen  MangaPanelGenerator
	seed *int64
}

// NewGeminiImageSource は GeminiImageSource を生成します。
// seed が nil でなければ、パネルごとに seed+index を指定して再現性を持たせます。
func NewGeminiImageSource(gen MangaPanelGenerator, seed *int64) *GeminiImageSource {
	return &GeminiImageSource{gen: gen, seed: seed}
}

// BuildPanelPrompt はパネルの描写と画風から画像生成用のプロンプトを組み立てます。
func BuildPanelPrompt(panel domain.PanelSource, style domain.Style) string {
	parts := []string{strings.TrimSpace(panel.Description)}
	if p := style.Prompt(); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, NoTextInstruction)
	return strings.Join(parts, " ")
}

func (s *GeminiImageSource) Render(ctx context.Context, index int, panel domain.PanelSource, style domain.Style) (image.Image, error) {
	req := imagedom.ImageGenerationRequest{
		Prompt:         BuildPanelPrompt(panel, style),
		NegativePrompt: NegativePanelPrompt,
		AspectRatio:    PanelAspectRatio,
	}
	if s.seed != nil {
		seed := *s.seed + int64(index)
		req.Seed = &seed
	}

	resp, err := s.gen.GenerateMangaPanel(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("画像データが空です")
	}
	img, _, err := image.Decode(bytes.NewReader(resp.Data))
	if err != nil {
		return nil, fmt.Errorf("生成画像のデコードに失敗しました (%s): %w", resp.MimeType, err)
	}
	return img, nil
}
