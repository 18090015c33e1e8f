package main

import (
	"embed"
	"io/fs"
	"log"

	"github.com/afumu/corpus/cmd"
)

//go:embed ui/dist
var uiDist embed.FS

func main() {
	staticFS, err := fs.Sub(uiDist, "ui/dist")
	if err != nil {
		log.Fatalf("无法加载嵌入的 UI 文件: %v", err)
	}
	cmd.StaticFS = staticFS
	cmd.Execute()
}
