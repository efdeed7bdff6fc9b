package qrcode

import (
	"fmt"

	qrc "github.com/skip2/go-qrcode"
)

// 订单 QR 载荷为纯文本，标签与行序是对外契约：
// 食堂侧扫码设备按固定标签逐行解析，不可改动
const orderPayloadFormat = "Order ID: %s\n" +
	"Student: %s\n" +
	"Food: %s\n" +
	"Day: %s\n" +
	"Quantity: %d\n" +
	"Time: %s"

// DefaultSize QR 图像默认边长（像素）
const DefaultSize = 512

// BuildOrderPayload 生成预订小票的 QR 文本载荷
func BuildOrderPayload(orderID, studentName, food, day string, quantity int, orderTime string) string {
	return fmt.Sprintf(orderPayloadFormat, orderID, studentName, food, day, quantity, orderTime)
}

// RenderPNG 将载荷渲染为 PNG 格式的二维码图像
func RenderPNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrc.Encode(payload, qrc.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("生成二维码失败: %w", err)
	}
	return png, nil
}
