// Package layout はコミックストリップの固定グリッドの幾何計算を提供します。
package layout

import "image"

const (
	// Columns はストリップの列数です。
	Columns = 2
	// Rows はストリップの行数です。
	Rows = 3
	// Cells はストリップに含まれるセルの総数です。
	Cells = Columns * Rows
)

// Cell はパネルのインデックスから行優先（左→右、上→下）のセル位置を返します。
func Cell(index int) (col, row int) {
	return index % Columns, index / Columns
}

// Origin はパネルサイズ (w, h) のとき、index 番目のパネルを貼り付ける左上座標を返します。
func Origin(index, w, h int) image.Point {
	col, row := Cell(index)
	return image.Pt(col*w, row*h)
}

// CellRect は index 番目のパネルが占める矩形を返します。
func CellRect(index, w, h int) image.Rectangle {
	o := Origin(index, w, h)
	return image.Rect(o.X, o.Y, o.X+w, o.Y+h)
}

// CanvasSize はパネルサイズ (w, h) からストリップ全体のキャンバス寸法を返します。
func CanvasSize(w, h int) image.Rectangle {
	return image.Rect(0, 0, Columns*w, Rows*h)
}
