package raylib

import (
	"unsafe"

	"github.com/gogpu/raylib/cmem"
	"github.com/gogpu/raylib/internal/bind"
)

var (
	procUpdateModelAnimation  = bind.New("UpdateModelAnimation", bind.Void, cModel, cModelAnimation, bind.Int)
	procUnloadModelAnimation  = bind.New("UnloadModelAnimation", bind.Void, cModelAnimation)
	procIsModelAnimationValid = bind.New("IsModelAnimationValid", bind.Bool, cModel, cModelAnimation)
)

// UpdateModelAnimation poses a model at one animation frame.
func UpdateModelAnimation(model Model, anim ModelAnimation, frame int32) {
	procUpdateModelAnimation.Call(nil, unsafe.Pointer(&model), unsafe.Pointer(&anim), unsafe.Pointer(&frame))
}

// UnloadModelAnimation releases one animation.
func UnloadModelAnimation(anim ModelAnimation) {
	procUnloadModelAnimation.Call(nil, unsafe.Pointer(&anim))
}

// IsModelAnimationValid reports whether an animation's skeleton matches a model.
func IsModelAnimationValid(model Model, anim ModelAnimation) bool {
	var r bool
	procIsModelAnimationValid.Call(unsafe.Pointer(&r), unsafe.Pointer(&model), unsafe.Pointer(&anim))
	return r
}

var (
	procLoadModelAnimations   = bind.New("LoadModelAnimations", bind.Ptr, bind.Ptr, bind.Ptr)
	procUnloadModelAnimations = bind.New("UnloadModelAnimations", bind.Void, bind.Ptr, bind.Int)
)

// LoadModelAnimations loads the animations of a model file (IQM, GLTF or
// M3D). The slice views native memory; release it with
// UnloadModelAnimations.
func LoadModelAnimations(fileName string) []ModelAnimation {
	cName := bind.CString(fileName)
	var count int32
	pCount := &count
	var p unsafe.Pointer
	procLoadModelAnimations.Call(unsafe.Pointer(&p), unsafe.Pointer(&cName), unsafe.Pointer(&pCount))
	return cmem.Slice[ModelAnimation](p, int(count))
}

// UnloadModelAnimations releases animations returned by
// LoadModelAnimations.
func UnloadModelAnimations(anims []ModelAnimation) {
	if len(anims) == 0 {
		return
	}
	p := sliceData(anims)
	n := int32(len(anims))
	procUnloadModelAnimations.Call(nil, unsafe.Pointer(&p), unsafe.Pointer(&n))
}

// AnimationName returns the name of an animation.
func (a ModelAnimation) AnimationName() string {
	return bind.GoStringN(&a.Name[0], len(a.Name))
}
