package raylib

// ConfigFlags are window and system configuration flags.
type ConfigFlags uint32

// Configuration flags.
const (
	FlagVsyncHint              ConfigFlags = 0x00000040
	FlagFullscreenMode         ConfigFlags = 0x00000002
	FlagWindowResizable        ConfigFlags = 0x00000004
	FlagWindowUndecorated      ConfigFlags = 0x00000008
	FlagWindowHidden           ConfigFlags = 0x00000080
	FlagWindowMinimized        ConfigFlags = 0x00000200
	FlagWindowMaximized        ConfigFlags = 0x00000400
	FlagWindowUnfocused        ConfigFlags = 0x00000800
	FlagWindowTopmost          ConfigFlags = 0x00001000
	FlagWindowAlwaysRun        ConfigFlags = 0x00000100
	FlagWindowTransparent      ConfigFlags = 0x00000010
	FlagWindowHighDPI          ConfigFlags = 0x00002000
	FlagWindowMousePassthrough ConfigFlags = 0x00004000
	FlagBorderlessWindowedMode ConfigFlags = 0x00008000
	FlagMSAA4xHint             ConfigFlags = 0x00000020
	FlagInterlacedHint         ConfigFlags = 0x00010000
)

// TraceLogLevel is the severity of a native log message.
type TraceLogLevel int32

// Trace log levels.
const (
	LogAll TraceLogLevel = iota
	LogTrace
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
	LogNone
)

var traceLogLevelNames = [...]string{"all", "trace", "debug", "info", "warning", "error", "fatal", "none"}

func (l TraceLogLevel) String() string {
	if l >= 0 && int(l) < len(traceLogLevelNames) {
		return traceLogLevelNames[l]
	}
	return "unknown"
}

// UnmarshalText parses a level name, as used in RAYLIB_TRACE_LEVEL.
func (l *TraceLogLevel) UnmarshalText(text []byte) error {
	for i, name := range traceLogLevelNames {
		if string(text) == name {
			*l = TraceLogLevel(i)
			return nil
		}
	}
	return &TraceLogLevelError{Value: string(text)}
}

// KeyboardKey is a keyboard key code.
type KeyboardKey int32

// Alphanumeric keys.
const (
	KeyNull         KeyboardKey = 0
	KeyApostrophe   KeyboardKey = 39
	KeyComma        KeyboardKey = 44
	KeyMinus        KeyboardKey = 45
	KeyPeriod       KeyboardKey = 46
	KeySlash        KeyboardKey = 47
	KeyZero         KeyboardKey = 48
	KeyOne          KeyboardKey = 49
	KeyTwo          KeyboardKey = 50
	KeyThree        KeyboardKey = 51
	KeyFour         KeyboardKey = 52
	KeyFive         KeyboardKey = 53
	KeySix          KeyboardKey = 54
	KeySeven        KeyboardKey = 55
	KeyEight        KeyboardKey = 56
	KeyNine         KeyboardKey = 57
	KeySemicolon    KeyboardKey = 59
	KeyEqual        KeyboardKey = 61
	KeyA            KeyboardKey = 65
	KeyB            KeyboardKey = 66
	KeyC            KeyboardKey = 67
	KeyD            KeyboardKey = 68
	KeyE            KeyboardKey = 69
	KeyF            KeyboardKey = 70
	KeyG            KeyboardKey = 71
	KeyH            KeyboardKey = 72
	KeyI            KeyboardKey = 73
	KeyJ            KeyboardKey = 74
	KeyK            KeyboardKey = 75
	KeyL            KeyboardKey = 76
	KeyM            KeyboardKey = 77
	KeyN            KeyboardKey = 78
	KeyO            KeyboardKey = 79
	KeyP            KeyboardKey = 80
	KeyQ            KeyboardKey = 81
	KeyR            KeyboardKey = 82
	KeyS            KeyboardKey = 83
	KeyT            KeyboardKey = 84
	KeyU            KeyboardKey = 85
	KeyV            KeyboardKey = 86
	KeyW            KeyboardKey = 87
	KeyX            KeyboardKey = 88
	KeyY            KeyboardKey = 89
	KeyZ            KeyboardKey = 90
	KeyLeftBracket  KeyboardKey = 91
	KeyBackslash    KeyboardKey = 92
	KeyRightBracket KeyboardKey = 93
	KeyGrave        KeyboardKey = 96
)

// Function keys.
const (
	KeySpace        KeyboardKey = 32
	KeyEscape       KeyboardKey = 256
	KeyEnter        KeyboardKey = 257
	KeyTab          KeyboardKey = 258
	KeyBackspace    KeyboardKey = 259
	KeyInsert       KeyboardKey = 260
	KeyDelete       KeyboardKey = 261
	KeyRight        KeyboardKey = 262
	KeyLeft         KeyboardKey = 263
	KeyDown         KeyboardKey = 264
	KeyUp           KeyboardKey = 265
	KeyPageUp       KeyboardKey = 266
	KeyPageDown     KeyboardKey = 267
	KeyHome         KeyboardKey = 268
	KeyEnd          KeyboardKey = 269
	KeyCapsLock     KeyboardKey = 280
	KeyScrollLock   KeyboardKey = 281
	KeyNumLock      KeyboardKey = 282
	KeyPrintScreen  KeyboardKey = 283
	KeyPause        KeyboardKey = 284
	KeyF1           KeyboardKey = 290
	KeyF2           KeyboardKey = 291
	KeyF3           KeyboardKey = 292
	KeyF4           KeyboardKey = 293
	KeyF5           KeyboardKey = 294
	KeyF6           KeyboardKey = 295
	KeyF7           KeyboardKey = 296
	KeyF8           KeyboardKey = 297
	KeyF9           KeyboardKey = 298
	KeyF10          KeyboardKey = 299
	KeyF11          KeyboardKey = 300
	KeyF12          KeyboardKey = 301
	KeyLeftShift    KeyboardKey = 340
	KeyLeftControl  KeyboardKey = 341
	KeyLeftAlt      KeyboardKey = 342
	KeyLeftSuper    KeyboardKey = 343
	KeyRightShift   KeyboardKey = 344
	KeyRightControl KeyboardKey = 345
	KeyRightAlt     KeyboardKey = 346
	KeyRightSuper   KeyboardKey = 347
	KeyKbMenu       KeyboardKey = 348
)

// Keypad keys.
const (
	KeyKp0        KeyboardKey = 320
	KeyKp1        KeyboardKey = 321
	KeyKp2        KeyboardKey = 322
	KeyKp3        KeyboardKey = 323
	KeyKp4        KeyboardKey = 324
	KeyKp5        KeyboardKey = 325
	KeyKp6        KeyboardKey = 326
	KeyKp7        KeyboardKey = 327
	KeyKp8        KeyboardKey = 328
	KeyKp9        KeyboardKey = 329
	KeyKpDecimal  KeyboardKey = 330
	KeyKpDivide   KeyboardKey = 331
	KeyKpMultiply KeyboardKey = 332
	KeyKpSubtract KeyboardKey = 333
	KeyKpAdd      KeyboardKey = 334
	KeyKpEnter    KeyboardKey = 335
	KeyKpEqual    KeyboardKey = 336
)

// Android keys.
const (
	KeyBack       KeyboardKey = 4
	KeyMenu       KeyboardKey = 5
	KeyVolumeUp   KeyboardKey = 24
	KeyVolumeDown KeyboardKey = 25
)

// MouseButton is a mouse button.
type MouseButton int32

// Mouse buttons.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonSide
	MouseButtonExtra
	MouseButtonForward
	MouseButtonBack
)

// MouseCursor is a system cursor shape.
type MouseCursor int32

// Mouse cursors.
const (
	MouseCursorDefault MouseCursor = iota
	MouseCursorArrow
	MouseCursorIBeam
	MouseCursorCrosshair
	MouseCursorPointingHand
	MouseCursorResizeEW
	MouseCursorResizeNS
	MouseCursorResizeNWSE
	MouseCursorResizeNESW
	MouseCursorResizeAll
	MouseCursorNotAllowed
)

// GamepadButton is a gamepad button.
type GamepadButton int32

// Gamepad buttons.
const (
	GamepadButtonUnknown GamepadButton = iota
	GamepadButtonLeftFaceUp
	GamepadButtonLeftFaceRight
	GamepadButtonLeftFaceDown
	GamepadButtonLeftFaceLeft
	GamepadButtonRightFaceUp
	GamepadButtonRightFaceRight
	GamepadButtonRightFaceDown
	GamepadButtonRightFaceLeft
	GamepadButtonLeftTrigger1
	GamepadButtonLeftTrigger2
	GamepadButtonRightTrigger1
	GamepadButtonRightTrigger2
	GamepadButtonMiddleLeft
	GamepadButtonMiddle
	GamepadButtonMiddleRight
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
)

// GamepadAxis is a gamepad analog axis.
type GamepadAxis int32

// Gamepad axes.
const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

// MaterialMapIndex selects a material map.
type MaterialMapIndex int32

// Material map indices.
const (
	MaterialMapAlbedo MaterialMapIndex = iota
	MaterialMapMetalness
	MaterialMapNormal
	MaterialMapRoughness
	MaterialMapOcclusion
	MaterialMapEmission
	MaterialMapHeight
	MaterialMapCubemap
	MaterialMapIrradiance
	MaterialMapPrefilter
	MaterialMapBRDF

	MaterialMapDiffuse  = MaterialMapAlbedo
	MaterialMapSpecular = MaterialMapMetalness
)

// ShaderLocationIndex indexes Shader.Locs.
type ShaderLocationIndex int32

// Shader location indices.
const (
	ShaderLocVertexPosition ShaderLocationIndex = iota
	ShaderLocVertexTexcoord01
	ShaderLocVertexTexcoord02
	ShaderLocVertexNormal
	ShaderLocVertexTangent
	ShaderLocVertexColor
	ShaderLocMatrixMVP
	ShaderLocMatrixView
	ShaderLocMatrixProjection
	ShaderLocMatrixModel
	ShaderLocMatrixNormal
	ShaderLocVectorView
	ShaderLocColorDiffuse
	ShaderLocColorSpecular
	ShaderLocColorAmbient
	ShaderLocMapAlbedo
	ShaderLocMapMetalness
	ShaderLocMapNormal
	ShaderLocMapRoughness
	ShaderLocMapOcclusion
	ShaderLocMapEmission
	ShaderLocMapHeight
	ShaderLocMapCubemap
	ShaderLocMapIrradiance
	ShaderLocMapPrefilter
	ShaderLocMapBRDF

	ShaderLocMapDiffuse  = ShaderLocMapAlbedo
	ShaderLocMapSpecular = ShaderLocMapMetalness
)

// ShaderUniformDataType is the type of a uniform value.
type ShaderUniformDataType int32

// Shader uniform types.
const (
	ShaderUniformFloat ShaderUniformDataType = iota
	ShaderUniformVec2
	ShaderUniformVec3
	ShaderUniformVec4
	ShaderUniformInt
	ShaderUniformIVec2
	ShaderUniformIVec3
	ShaderUniformIVec4
	ShaderUniformSampler2D
)

// ShaderAttributeDataType is the type of a vertex attribute.
type ShaderAttributeDataType int32

// Shader attribute types.
const (
	ShaderAttribFloat ShaderAttributeDataType = iota
	ShaderAttribVec2
	ShaderAttribVec3
	ShaderAttribVec4
)

// PixelFormat is an image or texture pixel format.
type PixelFormat int32

// Pixel formats.
const (
	PixelFormatUncompressedGrayscale PixelFormat = iota + 1
	PixelFormatUncompressedGrayAlpha
	PixelFormatUncompressedR5G6B5
	PixelFormatUncompressedR8G8B8
	PixelFormatUncompressedR5G5B5A1
	PixelFormatUncompressedR4G4B4A4
	PixelFormatUncompressedR8G8B8A8
	PixelFormatUncompressedR32
	PixelFormatUncompressedR32G32B32
	PixelFormatUncompressedR32G32B32A32
	PixelFormatUncompressedR16
	PixelFormatUncompressedR16G16B16
	PixelFormatUncompressedR16G16B16A16
	PixelFormatCompressedDXT1RGB
	PixelFormatCompressedDXT1RGBA
	PixelFormatCompressedDXT3RGBA
	PixelFormatCompressedDXT5RGBA
	PixelFormatCompressedETC1RGB
	PixelFormatCompressedETC2RGB
	PixelFormatCompressedETC2EACRGBA
	PixelFormatCompressedPVRTRGB
	PixelFormatCompressedPVRTRGBA
	PixelFormatCompressedASTC4x4RGBA
	PixelFormatCompressedASTC8x8RGBA
)

// Compressed reports whether p is a block-compressed format.
func (p PixelFormat) Compressed() bool {
	return p >= PixelFormatCompressedDXT1RGB
}

// TextureFilter is a texture sampling filter.
type TextureFilter int32

// Texture filters.
const (
	TextureFilterPoint TextureFilter = iota
	TextureFilterBilinear
	TextureFilterTrilinear
	TextureFilterAnisotropic4x
	TextureFilterAnisotropic8x
	TextureFilterAnisotropic16x
)

// TextureWrap is a texture addressing mode.
type TextureWrap int32

// Texture wrap modes.
const (
	TextureWrapRepeat TextureWrap = iota
	TextureWrapClamp
	TextureWrapMirrorRepeat
	TextureWrapMirrorClamp
)

// CubemapLayout is the arrangement of faces in a cubemap image.
type CubemapLayout int32

// Cubemap layouts.
const (
	CubemapLayoutAutoDetect CubemapLayout = iota
	CubemapLayoutLineVertical
	CubemapLayoutLineHorizontal
	CubemapLayoutCrossThreeByFour
	CubemapLayoutCrossFourByThree
	CubemapLayoutPanorama
)

// FontType is a glyph rasterisation method.
type FontType int32

// Font types.
const (
	FontDefault FontType = iota
	FontBitmap
	FontSDF
)

// BlendMode is a color blending mode.
type BlendMode int32

// Blend modes.
const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiplied
	BlendAddColors
	BlendSubtractColors
	BlendAlphaPremultiply
	BlendCustom
	BlendCustomSeparate
)

// Gesture is a touch gesture; values are bit flags.
type Gesture uint32

// Gestures.
const (
	GestureNone       Gesture = 0
	GestureTap        Gesture = 1
	GestureDoubleTap  Gesture = 2
	GestureHold       Gesture = 4
	GestureDrag       Gesture = 8
	GestureSwipeRight Gesture = 16
	GestureSwipeLeft  Gesture = 32
	GestureSwipeUp    Gesture = 64
	GestureSwipeDown  Gesture = 128
	GesturePinchIn    Gesture = 256
	GesturePinchOut   Gesture = 512
)

// CameraMode selects the UpdateCamera behavior.
type CameraMode int32

// Camera modes.
const (
	CameraCustom CameraMode = iota
	CameraFree
	CameraOrbital
	CameraFirstPerson
	CameraThirdPerson
)

// CameraProjection is a camera projection type.
type CameraProjection int32

// Camera projections.
const (
	CameraPerspective CameraProjection = iota
	CameraOrthographic
)

// NPatchLayout is an n-patch slicing layout.
type NPatchLayout int32

// N-patch layouts.
const (
	NPatchNinePatch NPatchLayout = iota
	NPatchThreePatchVertical
	NPatchThreePatchHorizontal
)

// Fixed array sizes of the default raylib build.
const (
	MaxShaderLocations = 32
	MaxMaterialMaps    = 12
)
