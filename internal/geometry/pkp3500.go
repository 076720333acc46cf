package geometry

import "github.com/keypad-studio/backend/internal/models"

func newPKP3500Geometry() models.KeypadModelGeometry {
	return BuildGridModelGeometry(GridModelSpec{
		ModelCode:     "PKP-3500-SI",
		LayoutLabel:   "3x5",
		Columns:       5,
		Rows:          3,
		IntrinsicSize: models.IntrinsicSize{Width: 1400, Height: 700},
		GridBounds: &GridBounds{
			XCentersPct: []float64{10.8, 30.9, 49.8, 68.2, 89.0},
			YCentersPct: []float64{15.0, 50.2, 83.2},
		},
	})
}
