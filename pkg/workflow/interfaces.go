package workflow

import (
	"context"

	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/generator"
	"github.com/shouni/go-comic-kit/pkg/publisher"
)

// Workflow は、ストリップ生成ワークフローの各工程を担当する Runner を構築するためのインターフェースを定義します。
type Workflow interface {
	BuildComposeRunner() (ComposeRunner, error)
	BuildGenerateRunner(content generator.ContentSource, images generator.ImageSource) (GenerateRunner, error)
}

// ComposeRunner は、既存のパネル画像とキャプションからストリップを合成して保存する責務を持ちます。
type ComposeRunner interface {
	Run(ctx context.Context, paths, captions []string, outputDir string) (publisher.PublishResult, error)
}

// GenerateRunner は、協調コンポーネントから内容と画像を集めてストリップを保存する責務を持ちます。
type GenerateRunner interface {
	Run(ctx context.Context, prompt string, style domain.Style, outputDir string) (publisher.PublishResult, error)
}
