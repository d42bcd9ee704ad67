package reel

import (
	"github.com/gin-gonic/gin"

	"bookreel/internal/model/reel"
)

// Options 返回创作选项目录（风格/题材/语言/音乐情绪/时长/演员库）
// @Summary      获取创作选项
// @Description  返回剧本生成配置可用的全部选项目录
// @Tags         选项
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "成功响应"
// @Router       /api/v1/options [get]
func (h *Handler) Options(c *gin.Context) {
	respondOK(c, gin.H{
		"genres":      reel.Genres,
		"styles":      reel.Styles,
		"durations":   reel.Durations,
		"languages":   reel.Languages,
		"music_moods": reel.MusicMoods,
		"actors":      reel.ActorDB,
	})
}

// ActorsForStyle 按风格/题材返回演员库（未映射的题材回退到相近风格）
// @Summary      按风格获取演员库
// @Tags         选项
// @Produce      json
// @Param        style  path      string  true  "风格或题材"
// @Success      200    {object}  map[string]interface{}  "成功响应"
// @Router       /api/v1/options/actors/{style} [get]
func (h *Handler) ActorsForStyle(c *gin.Context) {
	respondOK(c, reel.ActorsFor(c.Param("style")))
}
