// internal/model/level.go
package model

// LevelDefinition は1つの関卡(パズル)の正解単語セットです。
// JSONリソースからリクエスト毎に読み込まれ、変更されることはありません。
type LevelDefinition struct {
	Level  int      `json:"level"`
	Answer []string `json:"answer"` // 正解の単語 (順序あり)
}

// DefaultLevel はリクエストで level が省略された場合の値です。
const DefaultLevel = 1
