package scheduler

// injectLunchBreaks 在分配完成之后对每个员工的排班块做一次后处理：
// 超过阈值的连续排班块会在中点附近断开，插入一段午休，
// 原来的一个块变成两个块，午休时间不计入工时
//
// 断点对齐到 5 分钟，保证输出仍然是整洁的 HH:MM
func (s *Scheduler) injectLunchBreaks(blocks map[string]blockList) {
	if !s.constraints.MandatoryLunchBreak {
		return
	}

	threshold := hoursToMinutes(s.parameters.LunchSplitThreshold)
	breakLen := s.constraints.LunchBreakDuration

	for _, empBlocks := range blocks {
		for day, dayBlocks := range empBlocks {
			split := make([]window, 0, len(dayBlocks))

			for _, b := range dayBlocks {
				if b.minutes() <= threshold {
					split = append(split, b)
					continue
				}

				firstLen := (b.minutes() - breakLen) / 2
				firstLen -= firstLen % 5
				if firstLen <= 0 || b.start+firstLen+breakLen >= b.end {
					// 午休时长相对排班块过长，无法拆出两个非空的块，保持原样
					split = append(split, b)
					continue
				}

				split = append(split,
					window{start: b.start, end: b.start + firstLen},
					window{start: b.start + firstLen + breakLen, end: b.end},
				)
			}

			empBlocks[day] = split
		}
	}
}
