package handler

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// maxUploadWidth 限制落盘图片的最大宽度，超出时会等比缩放
const maxUploadWidth = 1600

// UploadImage 处理图片上传请求，返回可公开访问的 URL
func (a *API) UploadImage(c *gin.Context) {
	// 获取上传的文件
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	// 检查文件类型
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer src.Close()

	img, format, err := image.Decode(src)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Unsupported image format")
		return
	}

	// 创建上传目录
	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// 生成唯一文件名
	newFilename := fmt.Sprintf("%s-%s.%s", time.Now().Format("20060102"), uuid.New().String(), format)
	filePath := filepath.Join(a.uploadDir, newFilename)

	// 超宽图片先等比缩放再落盘
	if img.Bounds().Dx() > maxUploadWidth {
		img = downscale(img, maxUploadWidth)
	}

	if err := saveImage(filePath, format, img); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("%s/%s", strings.TrimSuffix(a.uploadURL, "/"), newFilename)})
}

// downscale 将图片等比缩放到目标宽度
func downscale(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func saveImage(path, format string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "jpeg":
		return jpeg.Encode(out, img, &jpeg.Options{Quality: 85})
	case "gif":
		return gif.Encode(out, img, nil)
	default:
		return png.Encode(out, img)
	}
}
