package unit

//Volume unit names
const (
	VolumeCubicMeter      = "m3"
	VolumeLiter           = "L"
	VolumeCubicCentimeter = "cm3"
	VolumeMilliliter      = "mL"
	VolumeCubicFoot       = "ft3"
	VolumeImperialGallon  = "imp gal"
	VolumeGallon          = "gal"
	VolumeQuart           = "qt"
)

//VolumeTable lists the volume units relative to one cubic meter
var VolumeTable = NewTable(CategoryVolume,
	Coefficient{VolumeCubicMeter, 1},
	Coefficient{VolumeLiter, 1000},
	Coefficient{VolumeCubicCentimeter, 1e6},
	Coefficient{VolumeMilliliter, 1e6},
	Coefficient{VolumeCubicFoot, 35.3145},
	Coefficient{VolumeImperialGallon, 220.83},
	Coefficient{VolumeGallon, 264.17},
	Coefficient{VolumeQuart, 1056.68},
)
