package server

import "github.com/soypat/lampshade"

// DesignRequest carries the adjustable inputs of a design. Absent fields keep the
// configured defaults. Ranges mirror lampshade.DefaultLimits.
type DesignRequest struct {
	TopDiameter    *float64 `json:"topDiameter" form:"top" binding:"omitempty,gte=16,lte=100"`
	MiddleDiameter *float64 `json:"middleDiameter" form:"middle" binding:"omitempty,gte=30,lte=120"`
	BottomDiameter *float64 `json:"bottomDiameter" form:"bottom" binding:"omitempty,gte=30,lte=120"`
	CylinderHeight *float64 `json:"cylinderHeight" form:"height" binding:"omitempty,gte=50,lte=120"`
	OverhangAngle  *float64 `json:"overhangAngle" form:"overhang" binding:"omitempty,gte=30,lte=80"`
	FeatureCount   *int     `json:"featureCount" form:"count" binding:"omitempty,gte=1,lte=10"`
	FeatureDepth   *float64 `json:"featureDepth" form:"depth" binding:"omitempty,gte=0,lte=4"`
	Detail         *int     `json:"detail" form:"detail" binding:"omitempty,gte=25,lte=300"`
	Pattern        *int     `json:"pattern" form:"pattern" binding:"omitempty,gte=0,lte=12"`
	Interpolation  *int     `json:"interpolation" form:"interpolation" binding:"omitempty,gte=0,lte=2"`
}

// apply returns base with the present fields of req set. The result is not derived.
func (req DesignRequest) apply(base lampshade.Params) lampshade.Params {
	p := base
	setf := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	seti := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setf(&p.TopDiameter, req.TopDiameter)
	setf(&p.MiddleDiameter, req.MiddleDiameter)
	setf(&p.BottomDiameter, req.BottomDiameter)
	setf(&p.CylinderHeight, req.CylinderHeight)
	setf(&p.OverhangAngle, req.OverhangAngle)
	seti(&p.FeatureCount, req.FeatureCount)
	setf(&p.FeatureDepth, req.FeatureDepth)
	seti(&p.Detail, req.Detail)
	if req.Pattern != nil {
		p.Pattern = lampshade.Pattern(*req.Pattern)
	}
	if req.Interpolation != nil {
		p.Interpolation = lampshade.Interpolation(*req.Interpolation)
	}
	return p
}

// ParseRequest is the body of a design line decode request.
type ParseRequest struct {
	Line string `json:"line" binding:"required"`
}

// Response wraps every JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RegionStats counts the elements of one mesh surface.
type RegionStats struct {
	Kind      string `json:"kind"`
	Vertices  int    `json:"vertices"`
	Triangles int    `json:"triangles"`
}

// Stats describes the mesh a design produces.
type Stats struct {
	Design            string           `json:"design"`
	Name              string           `json:"name"`
	Vertices          int              `json:"vertices"`
	Triangles         int              `json:"triangles"`
	ExportedVertices  int              `json:"exportedVertices"`
	ExportedTriangles int              `json:"exportedTriangles"`
	Regions           []RegionStats    `json:"regions"`
	Min               [3]float64       `json:"min"`
	Max               [3]float64       `json:"max"`
	Params            lampshade.Params `json:"params"`
}
