package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	ctrl := NewCameraController(WithPose(common.Pose{
		Position: mgl32.Vec3{1, 2, 3},
		Target:   mgl32.Vec3{1, 2, -7},
	}))
	cam := NewCamera(WithController(ctrl), WithAspect(16.0/9.0))

	// The target lies straight ahead in view space.
	v := cam.ViewMatrix().Mul4x1(mgl32.Vec4{1, 2, -7, 1})
	if !v.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -10}, 1e-4) {
		t.Fatalf("target in view space = %v, want (0, 0, -10)", v)
	}

	want := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	if !cam.ViewProjectionMatrix().ApproxEqual(want) {
		t.Fatal("view-projection is not projection * view")
	}
}

func TestCameraFollowsControllerOnUpdate(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl))
	ctrl.SetLookAt(mgl32.Vec3{4, 2.3, 0}, mgl32.Vec3{4, 2.3, -1}, false)
	cam.Update()

	if got := cam.Uniform().CameraPosition; got != (mgl32.Vec3{4, 2.3, 0}) {
		t.Fatalf("uniform position = %v, want (4, 2.3, 0)", got)
	}
}

func TestSetAspectRejectsInvalid(t *testing.T) {
	cam := NewCamera()
	cam.SetAspect(0)
	cam.SetAspect(float32(math.NaN()))
	if cam.Aspect() != 1 {
		t.Fatalf("Aspect() = %v, want 1", cam.Aspect())
	}
}

func TestUniformMarshal(t *testing.T) {
	u := GPUCameraUniform{ViewProj: mgl32.Ident4(), CameraPosition: mgl32.Vec3{1, 2, 3}}
	buf := u.Marshal()
	if len(buf) != 80 || u.Size() != 80 {
		t.Fatalf("marshalled %d bytes (Size %d), want 80", len(buf), u.Size())
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])); got != 2 {
		t.Fatalf("position.y = %v, want 2", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[20:])); got != 1 {
		t.Fatalf("view_proj[5] = %v, want 1", got)
	}
}
