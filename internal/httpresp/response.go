package httpresp

import "github.com/gin-gonic/gin"

type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(201, Response{Success: true, Data: data})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	})
}
