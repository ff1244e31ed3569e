package parameter

// Orbit camera looking at the pyramid apex region
// Yaw and pitch are degrees; distance is world units from the target
const (
	// CameraDistance frames the default 40-unit forest with some margin
	CameraDistance = 70.0

	// CameraPitch is elevation above the ground plane
	CameraPitch = 28.0

	// CameraYaw is the initial horizontal angle around +Y
	CameraYaw = 35.0

	// CameraTargetY lifts the look-at point to roughly the pyramid midpoint
	CameraTargetY = 4.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 50.0

	// CameraNear and CameraFar bound the projection depth range
	CameraNear = 0.5
	CameraFar  = 400.0

	// CameraYawStep and CameraPitchStep are per-keypress adjustments
	CameraYawStep   = 5.0
	CameraPitchStep = 3.0

	// CameraZoomStep is the per-keypress distance change
	CameraZoomStep = 5.0

	// CameraPitchMin and CameraPitchMax keep the camera above ground and below zenith
	CameraPitchMin = 5.0
	CameraPitchMax = 85.0

	// CameraDistanceMin and CameraDistanceMax bound zoom
	CameraDistanceMin = 15.0
	CameraDistanceMax = 200.0

	// CellAspect is terminal cell height/width, cells are ~2x taller than wide
	CellAspect = 2.0
)
