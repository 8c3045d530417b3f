package raylib

import (
	"github.com/gogpu/raylib/internal/bind"
)

// C layout descriptors of the struct mirrors, in declaration order of
// raylib.h.
var (
	cVector2   = bind.Struct(bind.Float, bind.Float)
	cVector3   = bind.Struct(bind.Float, bind.Float, bind.Float)
	cVector4   = bind.Struct(bind.Float, bind.Float, bind.Float, bind.Float)
	cMatrix    = bind.Struct(bind.Array(bind.Float, 16)...)
	cColor     = bind.Struct(bind.UChar, bind.UChar, bind.UChar, bind.UChar)
	cRectangle = bind.Struct(bind.Float, bind.Float, bind.Float, bind.Float)

	cImage         = bind.Struct(bind.Ptr, bind.Int, bind.Int, bind.Int, bind.Int)
	cTexture       = bind.Struct(bind.UInt, bind.Int, bind.Int, bind.Int, bind.Int)
	cRenderTexture = bind.Struct(bind.UInt, cTexture, cTexture)
	cNPatchInfo    = bind.Struct(cRectangle, bind.Int, bind.Int, bind.Int, bind.Int, bind.Int)
	cGlyphInfo     = bind.Struct(bind.Int, bind.Int, bind.Int, bind.Int, cImage)
	cFont          = bind.Struct(bind.Int, bind.Int, bind.Int, cTexture, bind.Ptr, bind.Ptr)

	cCamera3D = bind.Struct(cVector3, cVector3, cVector3, bind.Float, bind.Int)
	cCamera2D = bind.Struct(cVector2, cVector2, bind.Float, bind.Float)

	cMesh = bind.Struct(bind.Fields(
		bind.Array(bind.Int, 2),
		bind.Array(bind.Ptr, 11),
		[]*bind.Type{bind.UInt, bind.Ptr},
	)...)
	cShader      = bind.Struct(bind.UInt, bind.Ptr)
	cMaterialMap = bind.Struct(cTexture, cColor, bind.Float)
	cMaterial    = bind.Struct(cShader, bind.Ptr, bind.Float, bind.Float, bind.Float, bind.Float)
	cTransform   = bind.Struct(cVector3, cVector4, cVector3)
	cBoneInfo    = bind.Struct(bind.Fields(bind.Array(bind.Char, 32), []*bind.Type{bind.Int})...)
	cModel       = bind.Struct(cMatrix, bind.Int, bind.Int, bind.Ptr, bind.Ptr, bind.Ptr, bind.Int, bind.Ptr, bind.Ptr)

	cModelAnimation = bind.Struct(bind.Fields(
		[]*bind.Type{bind.Int, bind.Int, bind.Ptr, bind.Ptr},
		bind.Array(bind.Char, 32),
	)...)

	cRay          = bind.Struct(cVector3, cVector3)
	cRayCollision = bind.Struct(bind.Bool, bind.Float, cVector3, cVector3)
	cBoundingBox  = bind.Struct(cVector3, cVector3)

	cWave        = bind.Struct(bind.UInt, bind.UInt, bind.UInt, bind.UInt, bind.Ptr)
	cAudioStream = bind.Struct(bind.Ptr, bind.Ptr, bind.UInt, bind.UInt, bind.UInt)
	cSound       = bind.Struct(cAudioStream, bind.UInt)
	cMusic       = bind.Struct(cAudioStream, bind.UInt, bind.Bool, bind.Int, bind.Ptr)

	cVrDeviceInfo = bind.Struct(bind.Fields(
		[]*bind.Type{bind.Int, bind.Int},
		bind.Array(bind.Float, 5),
		bind.Array(bind.Float, 4),
		bind.Array(bind.Float, 4),
	)...)
	cVrStereoConfig = bind.Struct(bind.Fields(
		[]*bind.Type{cMatrix, cMatrix, cMatrix, cMatrix},
		bind.Array(bind.Float, 12),
	)...)

	cFilePathList = bind.Struct(bind.UInt, bind.UInt, bind.Ptr)
)
