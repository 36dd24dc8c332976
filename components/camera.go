package components

import (
	"github.com/automoto/foolrunner/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View *camera.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
