// Package geo holds the hand-maintained state center coordinate table used by
// the state summary map. The table deliberately covers only the states with
// meaningful airport counts in the scored dataset; callers skip states that
// are not listed.
package geo

// Center is a state's visual anchor point, roughly its geographic centroid.
type Center struct {
	Lat float64
	Lon float64
}

var stateCenters = map[string]Center{
	"Texas":          {31.054487, -97.563461},
	"California":     {36.116203, -119.681564},
	"Florida":        {27.766279, -81.686783},
	"Alaska":         {61.370716, -152.404419},
	"Montana":        {46.921925, -110.454353},
	"New York":       {42.165726, -74.948051},
	"Arizona":        {33.729759, -111.431221},
	"Nevada":         {38.313515, -117.055374},
	"Colorado":       {39.059811, -105.311104},
	"Illinois":       {40.349457, -88.986137},
	"Georgia":        {33.040619, -83.643074},
	"Michigan":       {43.326618, -84.536095},
	"Pennsylvania":   {40.590752, -77.209755},
	"Ohio":           {40.388783, -82.764915},
	"North Carolina": {35.630066, -79.806419},
}

// StateCenter looks up the anchor coordinate for a state name.
// ok is false for states absent from the table.
func StateCenter(state string) (Center, bool) {
	c, ok := stateCenters[state]
	return c, ok
}
