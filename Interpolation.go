package go_engunits

//BilinearInterpolate interpolates the value at point inside the grid.
//
//x and y are the grid boundaries and z[i][j] is the value
//at (x[i], y[j]). The function interpolates along x at both
//y edges first and then along y. Points outside the grid are
//extrapolated. A degenerate grid (equal boundaries) causes
//ErrDivisionByZero.
func BilinearInterpolate(point, x, y [2]float64, z [2][2]float64) (float64, error) {
	xx, yy := point[0], point[1]
	x1, x2 := x[0], x[1]
	y1, y2 := y[0], y[1]

	fx, err := divide(xx-x1, x2-x1)
	if err != nil {
		return 0, err
	}
	//explicit conversions keep the products from being fused with the sums
	v1 := float64(fx*(z[1][0]-z[0][0])) + z[0][0]
	v2 := float64(fx*(z[1][1]-z[0][1])) + z[0][1]

	fy, err := divide(yy-y1, y2-y1)
	if err != nil {
		return 0, err
	}
	return float64(fy*(v2-v1)) + v1, nil
}
