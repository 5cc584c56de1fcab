package lifecycle

// NeighborCounts tallies the living stages around a cell. Off neighbours are
// not counted.
type NeighborCounts struct {
	Young int
	Adult int
	Elder int
}

// NextState applies the transition rule to one cell.
//
//	Young: eaten (Off) by two or more Adults, otherwise matures to Adult.
//	Adult: reproduces (Young) with two or more Young around, otherwise ages to Elder.
//	Elder: dies (Off) when more than three Elders crowd it, otherwise rejuvenates to Young.
//	Off:   regenerates to Young when Adults plus Young number exactly two.
//
// Unknown states collapse to Off.
func NextState(current State, counts NeighborCounts) State {
	switch current {
	case Young:
		if counts.Adult > 1 {
			return Off
		}
		return Adult
	case Adult:
		if counts.Young >= 2 {
			return Young
		}
		return Elder
	case Elder:
		if counts.Elder > 3 {
			return Off
		}
		return Young
	case Off:
		if counts.Adult+counts.Young == 2 {
			return Young
		}
		return Off
	default:
		return Off
	}
}
