package publisher

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfEpoch は PDF の作成日時です。同じ画像から常に同じバイト列を得るために固定しています。
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const pdfImageName = "comic_strip"

// PDFOptions は1ページ PDF のレイアウト (単位は pt) です。
type PDFOptions struct {
	ImageWidth  float64
	ImageHeight float64
	TopMargin   float64
}

// ExportPDF は画像を A4 縦1ページの PDF として w に書き出します。
// 画像は ImageWidth × ImageHeight に拡縮され、上余白 TopMargin の位置で水平中央に配置されます。
func ExportPDF(w io.Writer, img image.Image, opts PDFOptions) error {
	if opts.ImageWidth <= 0 || opts.ImageHeight <= 0 {
		return fmt.Errorf("PDF の画像サイズが不正です: %vx%v", opts.ImageWidth, opts.ImageHeight)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("PDF 用画像のエンコードに失敗しました: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfImageName, imgOpts, &buf)

	pageW, _ := pdf.GetPageSize()
	x := (pageW - opts.ImageWidth) / 2
	pdf.ImageOptions(pdfImageName, x, opts.TopMargin, opts.ImageWidth, opts.ImageHeight, false, imgOpts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("PDF の生成に失敗しました: %w", err)
	}
	return nil
}
