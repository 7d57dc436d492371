package rtplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/tsawler/mlca/aperture"
	"github.com/tsawler/mlca/model"
)

// Reader-related errors.
var (
	// ErrNotRTPlan indicates the dataset lacks the fraction group or beam
	// sequences an RT Plan must carry.
	ErrNotRTPlan = errors.New("rtplan: dataset is not an RT plan")
)

// ReadFile parses a DICOM-RT Plan file and builds the analyzed plan.
func ReadFile(path string, opts model.Options) (*model.Plan, error) {
	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("rtplan: parse %s: %w", path, err)
	}
	return ReadDataset(ds, path, opts)
}

// ReadDataset builds the analyzed plan from an already-decoded dataset.
// source identifies the origin of the dataset in summary rows.
func ReadDataset(ds dicom.Dataset, source string, opts model.Options) (*model.Plan, error) {
	data, err := decodePlan(ds, source)
	if err != nil {
		return nil, err
	}
	return model.NewPlan(data, opts)
}

// decodePlan resolves the dataset into the plain input record. Identity
// tags are optional and default to empty strings; the fraction group and
// beam sequences are required.
func decodePlan(ds dicom.Dataset, source string) (model.PlanData, error) {
	elems := ds.Elements
	dec := textDecoder(elems)

	data := model.PlanData{Source: source}
	if s, ok := findString(elems, tag.RTPlanLabel); ok {
		data.PlanName = dec(s)
	}
	if s, ok := findString(elems, tag.PatientName); ok {
		data.PatientName = dec(s)
	}
	data.PatientID, _ = findString(elems, tag.PatientID)
	data.StudyInstanceUID, _ = findString(elems, tag.StudyInstanceUID)
	data.SOPInstanceUID, _ = findString(elems, tag.SOPInstanceUID)

	manufacturer, _ := findString(elems, tag.Manufacturer)
	modelName, _ := findString(elems, tag.ManufacturerModelName)
	data.TPS = strings.TrimSpace(manufacturer + " " + modelName)

	fxItems := nestedSeq(elems, tag.FractionGroupSequence)
	beamItems := nestedSeq(elems, tag.BeamSequence)
	if fxItems == nil || beamItems == nil {
		return data, fmt.Errorf("%w: %s", ErrNotRTPlan, source)
	}

	for _, item := range fxItems {
		data.FractionGroups = append(data.FractionGroups, decodeFxGroup(item))
	}
	for _, item := range beamItems {
		data.Beams = append(data.Beams, decodeBeam(item, dec))
	}
	return data, nil
}

func decodeFxGroup(elems []*dicom.Element) model.FxGroupData {
	fg := model.FxGroupData{ReferencedMU: make(map[int]float64)}
	if n, ok := findInt(elems, tag.NumberOfFractionsPlanned); ok {
		fg.Fractions = fmt.Sprintf("%d", n)
	}
	for _, ref := range nestedSeq(elems, tag.ReferencedBeamSequence) {
		num, ok := findInt(ref, tag.ReferencedBeamNumber)
		if !ok {
			continue
		}
		mu, ok := findFloat(ref, tag.BeamMeterset)
		if !ok {
			continue
		}
		fg.ReferencedMU[num] = mu
	}
	return fg
}

func decodeBeam(elems []*dicom.Element, dec func(string) string) model.BeamData {
	bd := model.BeamData{}
	bd.Number, _ = findInt(elems, tag.BeamNumber)

	// BeamDescription takes priority over BeamName.
	if s, ok := findString(elems, tag.BeamDescription); ok && s != "" {
		bd.Name = dec(s)
	} else if s, ok := findString(elems, tag.BeamName); ok {
		bd.Name = dec(s)
	}

	for _, bld := range nestedSeq(elems, tag.BeamLimitingDeviceSequence) {
		if vals, ok := findFloats(bld, tag.LeafPositionBoundaries); ok {
			bd.LeafBoundaries = vals
			break
		}
	}

	for _, cp := range nestedSeq(elems, tag.ControlPointSequence) {
		bd.ControlPoints = append(bd.ControlPoints, decodeControlPoint(cp))
	}
	return bd
}

func decodeControlPoint(elems []*dicom.Element) model.ControlPointData {
	cpd := model.ControlPointData{}
	cpd.CumulativeWeight, _ = findFloat(elems, tag.CumulativeMetersetWeight)

	if v, ok := findFloat(elems, tag.GantryAngle); ok {
		cpd.Gantry = &v
	}
	if v, ok := findFloat(elems, tag.BeamLimitingDeviceAngle); ok {
		cpd.Collimator = &v
	}
	if v, ok := findFloat(elems, tag.PatientSupportAngle); ok {
		cpd.Couch = &v
	}

	for _, dev := range nestedSeq(elems, tag.BeamLimitingDevicePositionSequence) {
		devType, ok := findString(dev, tag.RTBeamLimitingDeviceType)
		if !ok {
			continue
		}
		positions, ok := findFloats(dev, tag.LeafJawPositions)
		if !ok {
			continue
		}
		switch strings.ToLower(devType) {
		case "asymx":
			cpd.AsymX = positions
		case "asymy":
			cpd.AsymY = positions
		case "mlcx":
			cpd.Leaves = splitBanks(aperture.MLCX, positions)
		case "mlcy":
			cpd.Leaves = splitBanks(aperture.MLCY, positions)
		}
	}
	return cpd
}

// splitBanks halves the flat LeafJawPositions array into the two opposing
// banks: the first half is bank A, the second bank B.
func splitBanks(o aperture.Orientation, positions []float64) aperture.Leaves {
	mid := len(positions) / 2
	return aperture.Leaves{
		Orientation: o,
		A:           positions[:mid],
		B:           positions[mid:],
	}
}
